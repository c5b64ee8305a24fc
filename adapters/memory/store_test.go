package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/pkg/crypto"
)

func newUser(email string) *core.User {
	return &core.User{
		ID:        crypto.MustID(),
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Now(),
	}
}

func TestCreateAndGetUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newUser("alice@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	byID, err := store.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", byID.Email)
	}

	byEmail, err := store.GetUserByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail with different case: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("id = %q, want %q", byEmail.ID, u.ID)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.CreateUser(ctx, newUser("bob@example.com")); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	err := store.CreateUser(ctx, newUser("Bob@Example.com"))
	if err != core.ErrUserExists {
		t.Errorf("second CreateUser error = %v, want ErrUserExists", err)
	}
}

func TestCreateUserConcurrentSameEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.CreateUser(ctx, newUser("race@example.com"))
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else if err != core.ErrUserExists {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("created = %d, want exactly 1", created)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.GetUserByID(ctx, "missing"); err != core.ErrUserNotFound {
		t.Errorf("GetUserByID error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); err != core.ErrUserNotFound {
		t.Errorf("GetUserByEmail error = %v, want ErrUserNotFound", err)
	}
}

func TestAddSessionRotation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newUser("history@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	for i := 0; i < core.MaxSessionHistory+10; i++ {
		s := core.CodeSession{
			ID:        fmt.Sprintf("s-%d", i),
			Type:      core.OpAnalyze,
			Code:      "print('hi')",
			Language:  "python",
			Timestamp: time.Now(),
		}
		if err := store.AddSession(ctx, u.ID, s); err != nil {
			t.Fatalf("AddSession %d: %v", i, err)
		}
	}

	got, err := store.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if len(got.Sessions) != core.MaxSessionHistory {
		t.Fatalf("sessions = %d, want %d", len(got.Sessions), core.MaxSessionHistory)
	}
	// Oldest records rotate out; the first surviving record is s-10.
	if got.Sessions[0].ID != "s-10" {
		t.Errorf("first session = %q, want s-10", got.Sessions[0].ID)
	}
}

func TestAddSessionUnknownUser(t *testing.T) {
	store := NewStore()
	err := store.AddSession(context.Background(), "missing", core.CodeSession{ID: "s"})
	if err != core.ErrUserNotFound {
		t.Errorf("AddSession error = %v, want ErrUserNotFound", err)
	}
}

func TestGetUserReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	u := newUser("copy@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	first, _ := store.GetUserByID(ctx, u.ID)
	first.Name = "mutated"

	second, _ := store.GetUserByID(ctx, u.ID)
	if second.Name != "Test User" {
		t.Errorf("stored name changed to %q via returned pointer", second.Name)
	}
}
