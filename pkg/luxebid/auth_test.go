package luxebid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/luxebid/luxebid/pkg/model"
)

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login/" {
			t.Errorf("path = %q, want /users/login/", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "kay@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		w.Write([]byte(`{
			"user": {"id": 5, "email": "kay@example.com", "name": "Kay", "role": "buyer"},
			"access": "acc-tok",
			"refresh": "ref-tok"
		}`))
	}))

	result, err := c.Login(context.Background(), "kay@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != 5 || result.User.Email != "kay@example.com" {
		t.Errorf("user = %+v", result.User)
	}
	if result.Token != "acc-tok" || result.Refresh != "ref-tok" {
		t.Errorf("tokens = %q, %q", result.Token, result.Refresh)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "invalid email or password"}`))
	}))

	_, err := c.Login(context.Background(), "kay@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v does not carry *model.APIError", err)
	}
	if apiErr.Message != "invalid email or password" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestRegisterPasswordMismatchIsLocal(t *testing.T) {
	var requests atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))

	_, err := c.Register(context.Background(), RegisterRequest{
		Email:           "kay@example.com",
		Name:            "Kay",
		Role:            model.RoleBuyer,
		Password:        "one-password",
		ConfirmPassword: "another-password",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("server saw %d requests, want 0: mismatch must be rejected client-side", got)
	}
	if msgs := FieldMessages(err, "confirmPassword"); len(msgs) == 0 {
		t.Errorf("no field error on confirmPassword: %v", err)
	}
}

func TestRegister(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/register/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 8, "email": "new@example.com", "name": "New", "role": "seller"}`))
	}))

	user, err := c.Register(context.Background(), RegisterRequest{
		Email:           "new@example.com",
		Name:            "New",
		Role:            model.RoleSeller,
		Password:        "same",
		ConfirmPassword: "same",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != 8 || user.Role != model.RoleSeller {
		t.Errorf("user = %+v", user)
	}
}

func TestChangePasswordRequiresCredential(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))

	err := c.ChangePassword(context.Background(), "old", "new")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestVerifyOTP(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/verify-otp/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"detail": "verified"}`))
	}))

	if err := c.VerifyOTP(context.Background(), "kay@example.com", "123456"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if gotBody["email"] != "kay@example.com" || gotBody["otp"] != "123456" {
		t.Errorf("body = %v", gotBody)
	}
}
