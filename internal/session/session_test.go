package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/session"
)

// TestLoading_flipsOnce verifies the loading flag transitions true->false
// exactly once on initial resolution.
func TestLoading_flipsOnce(t *testing.T) {
	s := session.New()

	require.True(t, s.Loading())
	s.Resolve()
	require.False(t, s.Loading())
	s.Resolve()
	require.False(t, s.Loading())
}

// TestLogin_demoAccount verifies the seeded demo credentials sign in.
func TestLogin_demoAccount(t *testing.T) {
	s := session.New()

	ident, err := s.Login(session.DemoEmail, session.DemoPassword)

	require.NoError(t, err)
	assert.Equal(t, "Demo Traveler", ident.FullName)
	assert.True(t, s.Authenticated())
}

// TestLogin_invalidCredentials verifies that a wrong password or unknown
// email fails without altering existing session state.
func TestLogin_invalidCredentials(t *testing.T) {
	s := session.New()
	_, err := s.Login(session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)

	_, err = s.Login(session.DemoEmail, "wrong-password")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, err = s.Login("nobody@example.com", "whatever")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)

	// The earlier sign-in survives both failures.
	ident, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, session.DemoEmail, ident.Email)
}

// TestLogin_emailNormalization verifies that case and surrounding
// whitespace in the email do not matter.
func TestLogin_emailNormalization(t *testing.T) {
	s := session.New()

	_, err := s.Login("  Demo@TravelBuddy.app ", session.DemoPassword)

	require.NoError(t, err)
}

func TestSignup_validation(t *testing.T) {
	tests := []struct {
		name string
		req  session.SignupRequest
		want error
	}{
		{
			name: "missing full name",
			req:  session.SignupRequest{Email: "a@b.com", Password: "longenough"},
			want: session.ErrFullNameRequired,
		},
		{
			name: "missing email",
			req:  session.SignupRequest{FullName: "Ada", Password: "longenough"},
			want: session.ErrEmailRequired,
		},
		{
			name: "malformed email",
			req:  session.SignupRequest{FullName: "Ada", Email: "not-an-email", Password: "longenough"},
			want: session.ErrEmailInvalid,
		},
		{
			name: "short password",
			req:  session.SignupRequest{FullName: "Ada", Email: "a@b.com", Password: "tiny"},
			want: session.ErrPasswordTooShort,
		},
		{
			name: "taken email",
			req:  session.SignupRequest{FullName: "Ada", Email: session.DemoEmail, Password: "longenough"},
			want: session.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New()
			_, err := s.Signup(tt.req)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, s.Authenticated(), "failed signup must not sign in")
		})
	}
}

// TestSignup_success verifies a new account signs in immediately and can
// log back in after logout.
func TestSignup_success(t *testing.T) {
	s := session.New()

	ident, err := s.Signup(session.SignupRequest{
		FullName: "Ada Lovelace",
		Email:    "Ada@Example.COM",
		Password: "analytical",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ident.ID)
	assert.Equal(t, "ada@example.com", ident.Email)
	assert.Equal(t, "Ada Lovelace", ident.FullName)
	assert.True(t, s.Authenticated())

	s.Logout()
	assert.False(t, s.Authenticated())

	_, err = s.Login("ada@example.com", "analytical")
	require.NoError(t, err)
}
