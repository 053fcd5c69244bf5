package service

import (
	"context"
	"errors"

	"amozeshgah/internal/model"
)

type fakeCourseRepo struct {
	courses []model.Course
	err     error
}

func (f *fakeCourseRepo) ListCourses(context.Context) ([]model.Course, error) {
	return f.courses, f.err
}

type fakeUserRepo struct {
	users []model.User
	err   error
}

func (f *fakeUserRepo) FindByCredentials(_ context.Context, name, password string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Name == name && f.users[i].Password == password {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

type fakePurchaseRepo struct {
	created  []model.Purchase
	students []model.StudentPurchase
	tutorIDs []string
	err      error
}

func (f *fakePurchaseRepo) CreatePurchase(_ context.Context, p *model.Purchase) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *p)
	return nil
}

func (f *fakePurchaseRepo) ListTutorStudents(_ context.Context, tutorID string) ([]model.StudentPurchase, error) {
	f.tutorIDs = append(f.tutorIDs, tutorID)
	return f.students, f.err
}

type publishedMessage struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	messages []publishedMessage
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, payload []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, publishedMessage{topic: topic, payload: payload})
	return "msg-1", nil
}

type fakeSigner struct {
	failFor string
}

func (f fakeSigner) SignImageURL(_ context.Context, ref string) (string, error) {
	if ref == f.failFor {
		return "", errors.New("signing failed")
	}
	return "https://signed.example.com/" + ref, nil
}
