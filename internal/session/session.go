// Package session owns the current authenticated identity. Accounts
// live in process memory; there is no backend, so "authentication" is a
// registry seeded with a demo traveler plus whatever signups happen
// during the run.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFullNameRequired   = errors.New("full name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email address is invalid")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already taken")
)

// MinPasswordLen is the minimum accepted password length on signup.
const MinPasswordLen = 6

// DemoEmail and DemoPassword are the seeded demo account credentials,
// shown on the login screen.
const (
	DemoEmail    = "demo@travelbuddy.app"
	DemoPassword = "wanderlust"
)

// SignupRequest carries the fields collected by the signup form.
type SignupRequest struct {
	FullName string
	Email    string
	Password string
}

type account struct {
	identity domain.Identity
	hash     []byte
}

// Session holds the current identity, if any, and the account registry.
// All state changes are whole-record replacements under one mutex.
type Session struct {
	mu       sync.Mutex
	accounts map[string]account // keyed by lowercased email
	current  *domain.Identity

	// loading is true from construction until the initial resolution
	// completes; it flips to false exactly once.
	loading *atomic.Bool
}

// New constructs a Session with the demo account seeded and no identity
// signed in. Resolve must be called once to finish initialization.
func New() *Session {
	s := &Session{
		accounts: make(map[string]account),
		loading:  atomic.NewBool(true),
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; unreachable with DefaultCost.
		panic(err)
	}
	s.accounts[DemoEmail] = account{
		identity: domain.Identity{
			ID:       "1",
			Email:    DemoEmail,
			FullName: "Demo Traveler",
			Bio:      "Just here to look around.",
		},
		hash: hash,
	}
	return s
}

// Resolve completes initial session resolution. With no persistence
// there is never a stored identity to restore, so this only clears the
// loading flag. Further calls are no-ops.
func (s *Session) Resolve() {
	s.loading.Store(false)
}

// Loading reports whether the initial resolution is still in progress.
func (s *Session) Loading() bool {
	return s.loading.Load()
}

// Current returns the signed-in identity, if any.
func (s *Session) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// Authenticated reports whether an identity is signed in.
func (s *Session) Authenticated() bool {
	_, ok := s.Current()
	return ok
}

// Login verifies credentials and installs the matching identity.
// On failure the existing session state is left untouched.
func (s *Session) Login(email, password string) (domain.Identity, error) {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[key]
	if !ok {
		return domain.Identity{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}

	ident := acct.identity
	s.current = &ident
	return ident, nil
}

// Signup validates the request, registers the account, and signs it in.
func (s *Session) Signup(req SignupRequest) (domain.Identity, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return domain.Identity{}, ErrFullNameRequired
	}
	key := normalizeEmail(req.Email)
	if key == "" {
		return domain.Identity{}, ErrEmailRequired
	}
	if !looksLikeEmail(key) {
		return domain.Identity{}, ErrEmailInvalid
	}
	if len(req.Password) < MinPasswordLen {
		return domain.Identity{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[key]; exists {
		return domain.Identity{}, ErrEmailTaken
	}

	ident := domain.Identity{
		ID:       uuid.NewString(),
		Email:    key,
		FullName: strings.TrimSpace(req.FullName),
	}
	s.accounts[key] = account{identity: ident, hash: hash}
	s.current = &ident
	return ident, nil
}

// Logout clears the current identity. The account itself remains
// registered for the rest of the run.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// looksLikeEmail is a shape check, not RFC validation: one @ with
// something on both sides and a dot in the domain.
func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	dom := email[at+1:]
	if strings.Contains(dom, "@") {
		return false
	}
	dot := strings.Index(dom, ".")
	return dot > 0 && dot < len(dom)-1
}
