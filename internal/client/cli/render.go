package cli

import (
	"fmt"

	"github.com/ErikMirg/BSC-Portal/internal/client/editor"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/client/validation"
)

// placeholderName is shown for records still carrying the backend's default
// first and last names.
const placeholderName = "Someone new"

// displayNameOf renders a roster-friendly name for the record.
func displayNameOf(p *models.Profile) string {
	if p.HasDefaultName() {
		return placeholderName
	}
	if name := p.DisplayName(); name != "" {
		return name
	}
	return placeholderName
}

type fieldView struct {
	label string
	name  string
	value string
}

func profileFields(p *models.Profile) []fieldView {
	return []fieldView{
		{"First name", validation.FieldFirstName, p.FirstName},
		{"Last name", validation.FieldLastName, p.LastName},
		{"Middle name", validation.FieldMiddleName, p.MiddleName},
		{"Phone", validation.FieldPhone, p.Phone},
		{"Email", validation.FieldEmail, p.Email},
		{"Department", validation.FieldDepartment, p.Department},
		{"Working hours", validation.FieldWorkingHours, p.WorkingHours},
		{"Availability", "availability", p.Availability},
		{"Telegram", validation.FieldTelegram, p.TelegramLink},
		{"VK", validation.FieldVK, p.VKLink},
		{"Skype", validation.FieldSkype, p.SkypeLink},
		{"WhatsApp", validation.FieldWhatsApp, p.WhatsAppLink},
	}
}

// renderProfile prints the profile screen. View mode shows only the filled
// fields; edit mode shows every field with its validation message, if any,
// directly beneath.
func renderProfile(ed *editor.Editor) {
	p := ed.Profile()
	if p == nil {
		return
	}

	printlnFn("=== " + displayNameOf(p) + " ===")
	if url := ed.PhotoURL(); url != "" {
		printlnFn("Photo:", url)
	}
	if ed.Editing() && ed.PendingPhoto() != "" {
		printlnFn("Pending photo:", ed.PendingPhoto())
	}

	errs := ed.Errors()
	for _, f := range profileFields(p) {
		if !ed.Editing() && f.value == "" {
			continue
		}
		printlnFn(fmt.Sprintf("%-14s %s", f.label+":", f.value))
		if msg, ok := errs[f.name]; ok && ed.Editing() {
			printlnFn("  !", msg)
		}
	}

	if len(p.Projects) > 0 || ed.Editing() {
		printlnFn("Projects:")
		for i, tag := range p.Projects {
			printlnFn(fmt.Sprintf("  %d. %s", i+1, tag))
		}
	}

	if ed.Editing() {
		printlnFn("[editing] set <field> <value> | photo <path> | tag add <name> | tag rm <n> | save | cancel | back")
	} else if ed.CanDelete() {
		printlnFn("[viewing] edit | delete | back")
	} else {
		printlnFn("[viewing] edit | back")
	}
}

// printFieldErrors lists validation messages field by field.
func printFieldErrors(errs validation.Errors) {
	for _, field := range []string{
		validation.FieldLogin,
		validation.FieldPassword,
		validation.FieldRole,
		validation.FieldFirstName,
		validation.FieldLastName,
		validation.FieldMiddleName,
		validation.FieldPhone,
		validation.FieldEmail,
		validation.FieldDepartment,
		validation.FieldWorkingHours,
		validation.FieldTelegram,
		validation.FieldVK,
		validation.FieldSkype,
		validation.FieldWhatsApp,
	} {
		if msg, ok := errs[field]; ok {
			printlnFn(fmt.Sprintf("%s: %s", field, msg))
		}
	}
}
