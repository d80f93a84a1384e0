package service

import (
	"errors"
	"testing"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/auth"
)

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	f := newFixture(t)

	weak := []string{
		"short1A!",     // меньше 10 символов
		"abcdef1234!",  // без заглавной
		"ABCDEF1234!",  // без строчной
		"Abcdefghij!",  // без цифры
		"Abcdef123456", // без спецсимвола
	}

	for _, password := range weak {
		if _, err := f.users.Register("a@x.com", "alice", password); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Register with %q: err = %v, want ErrWeakPassword", password, err)
		}
	}

	var count int64
	if err := f.db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Errorf("weak-password signups created %d user rows, want 0", count)
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	f := newFixture(t)

	const password = "Abcdef1234!"
	user, err := f.users.Register("a@x.com", "alice", password)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.PasswordHash == password {
		t.Error("stored credential must not equal the plaintext password")
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		t.Error("stored credential must verify against the plaintext password")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	if _, err := f.users.Register("a@x.com", "alice", "Abcdef1234!"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := f.users.Register("a@x.com", "alice2", "Abcdef1234!"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: err = %v, want ErrEmailTaken", err)
	}

	// Email нормализуется, регистр не обходит проверку
	if _, err := f.users.Register("A@X.COM", "alice3", "Abcdef1234!"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email with different case: err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)

	if _, err := f.users.Register("a@x.com", "alice", "Abcdef1234!"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := f.users.Authenticate("a@x.com", "Abcdef1234!")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Authenticate returned username %q, want alice", user.Username)
	}

	if _, err := f.users.Authenticate("a@x.com", "WrongPass1!"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password: err = %v, want ErrWrongPassword", err)
	}

	if _, err := f.users.Authenticate("nobody@x.com", "Abcdef1234!"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email: err = %v, want ErrUserNotFound", err)
	}
}
