package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/editor"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/client/services"
	"github.com/ErikMirg/BSC-Portal/internal/client/validation"
)

// MyProfile opens the own-profile screen.
func (a *App) MyProfile(ctx context.Context) error {
	return a.profileScreen(ctx, services.Self())
}

// ViewProfile opens another user's profile screen: `view <id>`.
func (a *App) ViewProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: view <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		printlnFn("Usage: view <id>")
		return nil
	}
	return a.profileScreen(ctx, services.ByID(id))
}

// profileScreen runs the view/edit loop for one profile until the user
// types "back" (or the account is deleted).
func (a *App) profileScreen(ctx context.Context, sub services.Subject) error {
	ed := editor.New(sub, a.profiles, a.session, a.log)
	defer ed.Close()

	if err := ed.Load(ctx); err != nil {
		printlnFn("Failed to load profile.")
		a.log.Error(ctx, "load profile failed", "subject", sub.String(), "err", err)
		return err
	}

	for {
		renderProfile(ed)

		line, err := a.readLine()
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "back":
			if ed.Editing() && sub.IsSelf() {
				printlnFn("Still editing; your draft reopens next time.")
			}
			return nil

		case "edit":
			if err := ed.Edit(); err != nil {
				a.log.Error(ctx, "enter edit mode failed", "err", err)
			}

		case "cancel":
			if err := ed.Cancel(); err != nil {
				a.log.Error(ctx, "cancel edit failed", "err", err)
			}

		case "set":
			a.handleSet(ed, args, line)

		case "photo":
			a.handlePhoto(ed, args)

		case "tag":
			a.handleTag(ed, args)

		case "save":
			done, err := a.handleSave(ctx, ed)
			if err == nil && done && !sub.IsSelf() {
				renderProfile(ed)
				return nil
			}

		case "delete":
			deleted, err := a.handleDelete(ctx, ed)
			if err == nil && deleted {
				return a.Roster(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) readLine() (string, error) {
	fmt.Fprint(os.Stdout, "> ")
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) handleSet(ed *editor.Editor, args []string, line string) {
	if !ed.Editing() {
		printlnFn("Type 'edit' first.")
		return
	}
	if len(args) < 1 {
		printlnFn("Usage: set <field> <value>")
		return
	}
	// Everything after the field name is the value, spaces included.
	value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "set"))
	value = strings.TrimSpace(strings.TrimPrefix(value, args[0]))
	if err := setField(ed.Profile(), args[0], value); err != nil {
		printlnFn(err.Error())
	}
}

func (a *App) handlePhoto(ed *editor.Editor, args []string) {
	if !ed.Editing() {
		printlnFn("Type 'edit' first.")
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: photo <path>")
		return
	}
	if err := ed.AttachPhoto(args[0]); err != nil {
		if errors.Is(err, editor.ErrNotAnImage) {
			printlnFn("Only image files can be attached.")
		} else {
			printlnFn("Cannot read file:", args[0])
		}
		return
	}
	printlnFn("Photo staged; it is uploaded on save.")
}

func (a *App) handleTag(ed *editor.Editor, args []string) {
	if !ed.Editing() {
		printlnFn("Type 'edit' first.")
		return
	}
	if len(args) < 2 {
		printlnFn("Usage: tag add <name> | tag rm <n>")
		return
	}
	switch args[0] {
	case "add":
		tag := strings.Join(args[1:], " ")
		ok, err := ed.AddTag(tag)
		if err == nil && !ok {
			printlnFn("Tag is empty or already present.")
		}
	case "rm":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			printlnFn("Usage: tag rm <n>")
			return
		}
		_ = ed.RemoveTag(n - 1)
	default:
		printlnFn("Usage: tag add <name> | tag rm <n>")
	}
}

// handleSave submits the draft. Returns done=true when the save committed.
func (a *App) handleSave(ctx context.Context, ed *editor.Editor) (bool, error) {
	if !ed.Editing() {
		printlnFn("Type 'edit' first.")
		return false, nil
	}
	errs, err := ed.Save(ctx)
	if err != nil {
		printlnFn(saveErrorMessage(err))
		return false, err
	}
	if !errs.OK() {
		printlnFn("Fix the highlighted fields and save again.")
		return false, nil
	}
	printlnFn("Profile saved.")
	return true, nil
}

// handleDelete asks for confirmation and removes the account.
func (a *App) handleDelete(ctx context.Context, ed *editor.Editor) (bool, error) {
	if !ed.CanDelete() {
		printlnFn("You cannot delete your own account here.")
		return false, nil
	}
	answer, err := getSimpleText(a.reader, "Delete this account permanently? Type 'yes' to confirm", os.Stdout)
	if err != nil || !strings.EqualFold(answer, "yes") {
		printlnFn("Deletion cancelled.")
		return false, nil
	}
	if err := ed.Delete(ctx); err != nil {
		printlnFn("Failed to delete the account.")
		a.log.Error(ctx, "delete user failed", "err", err)
		return false, err
	}
	printlnFn("Account deleted.")
	return true, nil
}

func saveErrorMessage(err error) string {
	if errors.Is(err, api.ErrUnavailable) {
		return "Server is unavailable, try again later."
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to save the profile."
}

// setField writes value into the draft field named like the server schema.
func setField(p *models.Profile, name, value string) error {
	switch name {
	case validation.FieldFirstName:
		p.FirstName = value
	case validation.FieldLastName:
		p.LastName = value
	case validation.FieldMiddleName:
		p.MiddleName = value
	case validation.FieldPhone:
		p.Phone = value
	case validation.FieldEmail:
		p.Email = value
	case validation.FieldDepartment:
		p.Department = value
	case validation.FieldWorkingHours:
		p.WorkingHours = value
	case "availability":
		p.Availability = value
	case validation.FieldTelegram:
		p.TelegramLink = value
	case validation.FieldVK:
		p.VKLink = value
	case validation.FieldSkype:
		p.SkypeLink = value
	case validation.FieldWhatsApp:
		p.WhatsAppLink = value
	default:
		return fmt.Errorf("unknown field: %s", name)
	}
	return nil
}
