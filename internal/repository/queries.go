package repository

// SQL text for every statement the application runs. Column order must match
// the scan helpers in this package.
const (
	listCoursesQuery = `
		SELECT id, title, description, price, tutor_id, level, category, image_url, is_active
		FROM courses
	`

	userColumns = `id, name, email, password, role, profession, is_active, created_at, updated_at`

	findUserByCredentialsQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE name = $1 AND password = $2
	`

	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	insertPurchaseQuery = `
		INSERT INTO purchases (id, user_id, course_id, amount)
		VALUES ($1, $2, $3, $4)
	`

	listTutorStudentsQuery = `
		SELECT DISTINCT
			usr.id AS user_id,
			usr.email,
			usr.name,
			usr.role,
			usr.created_at,
			usr.updated_at,
			usr.is_active,
			usr.profession,
			p.course_id,
			p.amount,
			p.payment_status,
			p.payment_method,
			p.transaction_id,
			p.purchase_date,
			c.title AS course_title,
			c.description AS course_description,
			c.price AS course_price,
			c.level AS course_level,
			c.category AS course_category
		FROM purchases p
		INNER JOIN courses c ON p.course_id = c.id
		INNER JOIN users usr ON p.user_id = usr.id
		WHERE c.tutor_id = $1
			AND p.payment_status = 'COMPLETED'
		ORDER BY p.purchase_date DESC
	`
)
