package complaints

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sahyatri/sahyatri-backend/internal/models"
)

type fakeRepo struct {
	inserted  *models.Complaint
	insertErr error
}

func (f *fakeRepo) Insert(ctx context.Context, c *models.Complaint) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	c.ID = primitive.NewObjectID()
	f.inserted = c
	return nil
}

func TestFile(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	start := time.Now().UTC()

	c, err := svc.File(context.Background(), "Old City", "Broken street lights near the gate", "auth0|abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID.IsZero() {
		t.Fatal("expected generated id")
	}
	if c.Status != models.ComplaintSubmitted {
		t.Fatalf("expected status %q, got %q", models.ComplaintSubmitted, c.Status)
	}
	if c.FiledBy != "auth0|abc" {
		t.Fatalf("unexpected filedBy: %q", c.FiledBy)
	}
	if c.CreatedAt.Before(start) {
		t.Fatalf("createdAt %v is before request start %v", c.CreatedAt, start)
	}
}

func TestFile_MissingFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	cases := []struct {
		name     string
		zoneName string
		details  string
	}{
		{"empty zone", "", "some details"},
		{"empty details", "Old City", ""},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.File(context.Background(), tc.zoneName, tc.details, "auth0|abc")
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got: %v", err)
			}
			if repo.inserted != nil {
				t.Fatal("no record may be created on validation failure")
			}
		})
	}
}

func TestFile_StoreError(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("write failed")}
	svc := NewService(repo)

	_, err := svc.File(context.Background(), "Old City", "details", "auth0|abc")
	if err == nil || errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected wrapped store error, got: %v", err)
	}
	if !errors.Is(err, repo.insertErr) {
		t.Fatalf("expected error to wrap store failure, got: %v", err)
	}
}
