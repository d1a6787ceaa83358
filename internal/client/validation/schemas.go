package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
)

// Field names shared with the server schema and the forms.
const (
	FieldLogin        = "login"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldMiddleName   = "middle_name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldDepartment   = "department"
	FieldWorkingHours = "working_hours"
	FieldTelegram     = "telegram_link"
	FieldVK           = "vk_link"
	FieldSkype        = "skype_link"
	FieldWhatsApp     = "whatsapp_link"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё-]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)
	hoursRe = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)
	loginRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// specialChars is the set a password must draw at least one character from.
const specialChars = "!@#$%^&*()-_=+[{]}\\|;:'\",<.>/?`~"

func validURL(msg string) Rule {
	return func(v string) string {
		v = strings.TrimSpace(v)
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return msg
		}
		return ""
	}
}

// LoginSchema gates the login form: both fields simply must be present.
var LoginSchema = Schema{
	{Name: FieldLogin, Rules: []Rule{required("Enter your login")}},
	{Name: FieldPassword, Rules: []Rule{required("Enter your password")}},
}

// ProfileSchema mirrors the server-side profile constraints.
var ProfileSchema = Schema{
	{Name: FieldFirstName, Rules: []Rule{
		required("Required field"),
		minLen(2, "First name must be at least 2 characters"),
		maxLen(35, "First name must not exceed 35 characters"),
		pattern(nameRe, "First name contains invalid characters"),
	}},
	{Name: FieldLastName, Rules: []Rule{
		required("Required field"),
		minLen(2, "Last name must be at least 2 characters"),
		maxLen(35, "Last name must not exceed 35 characters"),
		pattern(nameRe, "Last name contains invalid characters"),
	}},
	{Name: FieldMiddleName, Rules: []Rule{
		optional(maxLen(35, "Middle name must not exceed 35 characters")),
		optional(pattern(nameRe, "Middle name contains invalid characters")),
	}},
	{Name: FieldPhone, Rules: []Rule{
		required("Required field"),
		pattern(phoneRe, "Invalid phone format"),
	}},
	{Name: FieldEmail, Rules: []Rule{
		required("Required field"),
		pattern(emailRe, "Invalid email format"),
	}},
	{Name: FieldDepartment, Rules: []Rule{
		required("Department is required"),
		maxLen(50, "Department name must not exceed 50 characters"),
	}},
	{Name: FieldWorkingHours, Rules: []Rule{
		optional(pattern(hoursRe, "Expected format: hh:mm-hh:mm")),
	}},
	{Name: FieldTelegram, Rules: []Rule{optional(validURL("Invalid Telegram link"))}},
	{Name: FieldVK, Rules: []Rule{optional(validURL("Invalid VK link"))}},
	{Name: FieldSkype, Rules: []Rule{optional(validURL("Invalid Skype link"))}},
	{Name: FieldWhatsApp, Rules: []Rule{optional(validURL("Invalid WhatsApp link"))}},
}

// NewUserSchema gates the provisioning form.
var NewUserSchema = Schema{
	{Name: FieldLogin, Rules: []Rule{
		required("Required field"),
		minLen(3, "Login must be at least 3 characters"),
		maxLen(35, "Login must not exceed 35 characters"),
		pattern(loginRe, "Login may contain only latin letters, digits and underscore"),
	}},
	{Name: FieldPassword, Rules: []Rule{
		required("Required field"),
		lenBetween(8, 64, "Password must be 8 to 64 characters"),
		pattern(upperRe, "Password must contain an upper-case letter"),
		pattern(lowerRe, "Password must contain a lower-case letter"),
		pattern(digitRe, "Password must contain a digit"),
		containsAny(specialChars, "Password must contain a special character"),
	}},
	{Name: FieldRole, Rules: []Rule{
		required("Required field"),
		oneOf([]string{string(models.RoleEmployee), string(models.RoleAdmin)}, "Choose a valid role"),
	}},
}

// ValidateLoginForm checks the login form inputs.
func ValidateLoginForm(login, password string) Errors {
	return LoginSchema.Validate(map[string]string{
		FieldLogin:    login,
		FieldPassword: password,
	})
}

// ValidateProfile checks an edit draft against the profile constraints.
func ValidateProfile(p *models.Profile) Errors {
	return ProfileSchema.Validate(map[string]string{
		FieldFirstName:    p.FirstName,
		FieldLastName:     p.LastName,
		FieldMiddleName:   p.MiddleName,
		FieldPhone:        p.Phone,
		FieldEmail:        p.Email,
		FieldDepartment:   p.Department,
		FieldWorkingHours: p.WorkingHours,
		FieldTelegram:     p.TelegramLink,
		FieldVK:           p.VKLink,
		FieldSkype:        p.SkypeLink,
		FieldWhatsApp:     p.WhatsAppLink,
	})
}

// ValidateNewUser checks a provisioning request before it is submitted.
func ValidateNewUser(req models.NewUserRequest) Errors {
	return NewUserSchema.Validate(map[string]string{
		FieldLogin:    req.Login,
		FieldPassword: req.Password,
		FieldRole:     string(req.Role),
	})
}
