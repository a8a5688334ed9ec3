package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-todo/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	m := New("secret", "smart-todo", time.Hour)

	token, err := m.CreateToken("user-1")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	sc, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sc.UserID != "user-1" {
		t.Errorf("UserID = %q", sc.UserID)
	}
}

func TestManager_Rejects(t *testing.T) {
	m := New("secret", "smart-todo", time.Hour)

	other, _ := New("other-secret", "smart-todo", time.Hour).CreateToken("user-1")
	wrongIssuer, _ := New("secret", "someone-else", time.Hour).CreateToken("user-1")
	noSubject, _ := m.CreateToken("")

	expiredMgr := New("secret", "smart-todo", time.Hour).(*implManager)
	expiredMgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredMgr.CreateToken("user-1")

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", ErrInvalidToken},
		{"wrong secret", other, ErrInvalidToken},
		{"wrong issuer", wrongIssuer, ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"no subject", noSubject, ErrMissingOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("empty context should carry no scope")
	}

	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u"})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.UserID != "u" {
		t.Errorf("got %+v, %v", sc, ok)
	}
}
