package screens

import (
	"errors"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"

	"github.com/travelbuddy/travelbuddy/internal/nav"
	"github.com/travelbuddy/travelbuddy/internal/session"
)

// Login is the sign-in form. Start submits, X switches to signup.
func (s *Screens) Login(input any) (any, error) {
	in, _ := input.(nav.AuthInput)

	emailItem := keyboardItem(s.T("auth.field.email"), in.PrefillEmail, false)
	passwordItem := keyboardItem(s.T("auth.field.password"), "", true)
	items := []gabagool.ItemWithOptions{emailItem, passwordItem}

	for {
		res, err := gabagool.OptionsList(
			s.T("auth.login.title"),
			s.authFormSettings(s.T("auth.submit.login"), s.T("auth.switch_to_signup")),
			items,
		)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.AuthResult{Action: nav.AuthActionBack}, nil
			}
			return nil, err
		}

		email := fieldText(res.Items, 0)
		password := fieldText(res.Items, 1)

		switch res.Action {
		case gabagool.ListActionTriggered:
			return nav.AuthResult{Action: nav.AuthActionSwitch, Email: email}, nil
		case gabagool.ListActionConfirmed:
			if _, err := s.Session.Login(email, password); err != nil {
				s.flashError(s.authErrorMessage(err))
				items = res.Items
				continue
			}
			s.Log.Info("signed in", "email", email)
			return nav.AuthResult{Action: nav.AuthActionSignedIn}, nil
		default:
			items = res.Items
		}
	}
}

// Signup is the account creation form.
func (s *Screens) Signup(input any) (any, error) {
	in, _ := input.(nav.AuthInput)

	items := []gabagool.ItemWithOptions{
		keyboardItem(s.T("auth.field.full_name"), "", false),
		keyboardItem(s.T("auth.field.email"), in.PrefillEmail, false),
		keyboardItem(s.T("auth.field.password"), "", true),
	}

	for {
		res, err := gabagool.OptionsList(
			s.T("auth.signup.title"),
			s.authFormSettings(s.T("auth.submit.signup"), s.T("auth.switch_to_login")),
			items,
		)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.AuthResult{Action: nav.AuthActionBack}, nil
			}
			return nil, err
		}

		fullName := fieldText(res.Items, 0)
		email := fieldText(res.Items, 1)
		password := fieldText(res.Items, 2)

		switch res.Action {
		case gabagool.ListActionTriggered:
			return nav.AuthResult{Action: nav.AuthActionSwitch, Email: email}, nil
		case gabagool.ListActionConfirmed:
			req := session.SignupRequest{FullName: fullName, Email: email, Password: password}
			if _, err := s.Session.Signup(req); err != nil {
				s.flashError(s.authErrorMessage(err))
				items = res.Items
				continue
			}
			s.Log.Info("account created", "email", email)
			return nav.AuthResult{Action: nav.AuthActionSignedIn}, nil
		default:
			items = res.Items
		}
	}
}

func (s *Screens) authFormSettings(submitHelp, switchHelp string) gabagool.OptionListSettings {
	return gabagool.OptionListSettings{
		ActionButton:  constants.VirtualButtonX,
		ConfirmButton: constants.VirtualButtonStart,
		FooterHelpItems: []gabagool.FooterHelpItem{
			{ButtonName: "Start", HelpText: submitHelp},
			{ButtonName: "X", HelpText: switchHelp},
			{ButtonName: "A", HelpText: s.T("footer.edit")},
		},
	}
}

// keyboardItem builds a text field row backed by the virtual keyboard.
func keyboardItem(label, initial string, masked bool) gabagool.ItemWithOptions {
	return gabagool.ItemWithOptions{
		Item: gabagool.MenuItem{Text: label},
		Options: []gabagool.Option{
			{
				DisplayName:    initial,
				Value:          initial,
				Type:           gabagool.OptionTypeKeyboard,
				KeyboardPrompt: initial,
				Masked:         masked,
			},
		},
	}
}

// fieldText reads the current text of a keyboard field.
func fieldText(items []gabagool.ItemWithOptions, index int) string {
	if index < 0 || index >= len(items) {
		return ""
	}
	if text, ok := items[index].Value().(string); ok {
		return text
	}
	return ""
}

// authErrorMessage maps session errors to catalog messages.
func (s *Screens) authErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return s.T("auth.error.invalid_credentials")
	case errors.Is(err, session.ErrFullNameRequired):
		return s.T("auth.error.full_name_required")
	case errors.Is(err, session.ErrEmailRequired):
		return s.T("auth.error.email_required")
	case errors.Is(err, session.ErrEmailInvalid):
		return s.T("auth.error.email_invalid")
	case errors.Is(err, session.ErrPasswordTooShort):
		return s.T("auth.error.password_too_short")
	case errors.Is(err, session.ErrEmailTaken):
		return s.T("auth.error.email_taken")
	}
	return err.Error()
}
