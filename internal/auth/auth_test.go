package auth

import "testing"

func TestLocalProvider(t *testing.T) {
	p := NewLocal("Robin", "robin@example.com")

	user, ok := p.CurrentUser()
	if !ok {
		t.Fatal("local provider reported signed out")
	}
	if user.Name != "Robin" || user.Email != "robin@example.com" || user.ID != "local" {
		t.Errorf("user = %+v", user)
	}

	unsubscribe := p.OnAuthChange(func(User, bool) {
		t.Error("local provider fired an auth change")
	})
	unsubscribe()
}

func TestLocalProviderDefaultName(t *testing.T) {
	p := NewLocal("", "")
	user, _ := p.CurrentUser()
	if user.Name != "adventurer" {
		t.Errorf("Name = %q, want fallback", user.Name)
	}
}
