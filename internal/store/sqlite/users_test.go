package sqlite

import (
	"context"
	"testing"
)

func TestUpsertUser_FirstNameWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertUser(ctx, 100, "Behruz"); err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if err := s.UpsertUser(ctx, 100, "Boshqa"); err != nil {
		t.Fatalf("UpsertUser repeat: %v", err)
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Name != "Behruz" {
		t.Errorf("name: got %q, want %q", users[0].Name, "Behruz")
	}
}

func TestListUsers_IDOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, u := range []struct {
		id   int64
		name string
	}{
		{30, "C"},
		{10, "A"},
		{20, ""},
	} {
		if err := s.UpsertUser(ctx, u.id, u.name); err != nil {
			t.Fatalf("UpsertUser(%d): %v", u.id, err)
		}
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	wantIDs := []int64{10, 20, 30}
	for i, id := range wantIDs {
		if users[i].ID != id {
			t.Errorf("item %d: got id %d, want %d", i, users[i].ID, id)
		}
	}
	// A missing name round-trips as the empty string.
	if users[1].Name != "" {
		t.Errorf("user 20 name: got %q, want empty", users[1].Name)
	}
}

func TestCountUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 0 {
		t.Errorf("empty store: got %d users", n)
	}

	for id := int64(1); id <= 5; id++ {
		if err := s.UpsertUser(ctx, id, "U"); err != nil {
			t.Fatalf("UpsertUser(%d): %v", id, err)
		}
	}
	// Repeats must not inflate the count.
	if err := s.UpsertUser(ctx, 3, "U yana"); err != nil {
		t.Fatalf("UpsertUser repeat: %v", err)
	}

	n, err = s.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 5 {
		t.Errorf("got %d users, want 5", n)
	}
}

func TestAdmins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertAdmin(ctx, 555, "Islom"); err != nil {
		t.Fatalf("UpsertAdmin: %v", err)
	}
	if err := s.UpsertAdmin(ctx, 555, "Boshqa"); err != nil {
		t.Fatalf("UpsertAdmin repeat: %v", err)
	}
	if err := s.UpsertAdmin(ctx, 111, "Behruz"); err != nil {
		t.Fatalf("UpsertAdmin: %v", err)
	}

	admins, err := s.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("expected 2 admins, got %d", len(admins))
	}
	if admins[0].ID != 111 || admins[1].ID != 555 {
		t.Errorf("order: got %d,%d, want 111,555", admins[0].ID, admins[1].ID)
	}
	if admins[1].Name != "Islom" {
		t.Errorf("admin 555 name: got %q, want %q", admins[1].Name, "Islom")
	}
}

func TestDeleteAdmin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertAdmin(ctx, 1, "A"); err != nil {
		t.Fatalf("UpsertAdmin: %v", err)
	}

	if err := s.DeleteAdmin(ctx, 1); err != nil {
		t.Fatalf("DeleteAdmin: %v", err)
	}
	// Absent id is a no-op.
	if err := s.DeleteAdmin(ctx, 1); err != nil {
		t.Fatalf("DeleteAdmin absent: %v", err)
	}

	admins, err := s.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 0 {
		t.Errorf("expected no admins, got %d", len(admins))
	}
}
