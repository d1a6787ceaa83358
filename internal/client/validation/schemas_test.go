package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
)

func validProfile() *models.Profile {
	return &models.Profile{
		FirstName:  "Ivan",
		LastName:   "Petrov",
		Phone:      "+79131234567",
		Email:      "ivan@bsc.example",
		Department: "Engineering",
	}
}

func TestValidateLoginForm(t *testing.T) {
	errs := ValidateLoginForm("", "")
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, FieldLogin)
	assert.Contains(t, errs, FieldPassword)

	assert.True(t, ValidateLoginForm("ivan", "secret").OK())
}

func TestValidateProfile_ValidPasses(t *testing.T) {
	assert.True(t, ValidateProfile(validProfile()).OK())
}

func TestValidateProfile_FieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *models.Profile)
		wantField string
	}{
		{"first name required", func(p *models.Profile) { p.FirstName = "" }, FieldFirstName},
		{"first name too short", func(p *models.Profile) { p.FirstName = "I" }, FieldFirstName},
		{"first name bad characters", func(p *models.Profile) { p.FirstName = "Ivan42" }, FieldFirstName},
		{"last name required", func(p *models.Profile) { p.LastName = "" }, FieldLastName},
		{"middle name bad characters", func(p *models.Profile) { p.MiddleName = "X9" }, FieldMiddleName},
		{"phone required", func(p *models.Profile) { p.Phone = "" }, FieldPhone},
		{"phone bad format", func(p *models.Profile) { p.Phone = "0123" }, FieldPhone},
		{"email bad format", func(p *models.Profile) { p.Email = "not-an-email" }, FieldEmail},
		{"department required", func(p *models.Profile) { p.Department = "" }, FieldDepartment},
		{"working hours format", func(p *models.Profile) { p.WorkingHours = "9-18" }, FieldWorkingHours},
		{"telegram must be a URL", func(p *models.Profile) { p.TelegramLink = "not a link" }, FieldTelegram},
		{"vk must be a URL", func(p *models.Profile) { p.VKLink = "ftp://vk.com/x" }, FieldVK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(p)
			errs := ValidateProfile(p)
			assert.Contains(t, errs, tc.wantField)
		})
	}
}

func TestValidateProfile_OptionalFieldsMayBeEmpty(t *testing.T) {
	p := validProfile()
	p.MiddleName = ""
	p.WorkingHours = ""
	p.Availability = ""
	p.TelegramLink = ""
	assert.True(t, ValidateProfile(p).OK())
}

func TestValidateProfile_CyrillicNamesAccepted(t *testing.T) {
	p := validProfile()
	p.FirstName = "Иван"
	p.LastName = "Петров-Водкин"
	p.MiddleName = "Сергеевич"
	assert.True(t, ValidateProfile(p).OK())
}

func TestValidateNewUser(t *testing.T) {
	valid := models.NewUserRequest{Login: "ab_3", Password: "Abcdef1!", Role: models.RoleEmployee}
	assert.True(t, ValidateNewUser(valid).OK())

	tests := []struct {
		name      string
		mutate    func(r *models.NewUserRequest)
		wantField string
	}{
		{"login too short", func(r *models.NewUserRequest) { r.Login = "ab" }, FieldLogin},
		{"login bad characters", func(r *models.NewUserRequest) { r.Login = "ab-3" }, FieldLogin},
		{"password too short", func(r *models.NewUserRequest) { r.Password = "Ab1!" }, FieldPassword},
		{"password needs upper case", func(r *models.NewUserRequest) { r.Password = "abcdef1!" }, FieldPassword},
		{"password needs lower case", func(r *models.NewUserRequest) { r.Password = "ABCDEF1!" }, FieldPassword},
		{"password needs digit", func(r *models.NewUserRequest) { r.Password = "Abcdefg!" }, FieldPassword},
		{"password needs special char", func(r *models.NewUserRequest) { r.Password = "Abcdefg1" }, FieldPassword},
		{"role must be allowed", func(r *models.NewUserRequest) { r.Role = "root" }, FieldRole},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			errs := ValidateNewUser(r)
			assert.Contains(t, errs, tc.wantField)
		})
	}
}
