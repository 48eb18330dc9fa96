package message_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kanzihq/whatsapp-go/message"
)

func replyButtons(n int) []*message.InteractiveReplyButton {
	buttons := make([]*message.InteractiveReplyButton, n)
	for i := range buttons {
		buttons[i] = &message.InteractiveReplyButton{ID: "btn", Title: "Go"}
	}

	return buttons
}

func TestNew_RejectsOverlongTextBody(t *testing.T) {
	_, err := message.New("12345", message.WithTextMessage(&message.Text{
		Body: strings.Repeat("a", message.MaxTextBodyLength+1),
	}))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() error = %v, want ErrMessageValidation", err)
	}

	_, err = message.New("12345", message.WithTextMessage(&message.Text{
		Body: strings.Repeat("a", message.MaxTextBodyLength),
	}))
	if err != nil {
		t.Fatalf("New() at the limit should pass, got %v", err)
	}
}

func TestNew_RejectsTooManyReplyButtons(t *testing.T) {
	_, err := message.New("12345", message.WithInteractiveReplyButtons(
		&message.InteractiveReplyButtonsRequest{
			Body:    "pick one",
			Buttons: replyButtons(message.MaxReplyButtons + 1),
		}))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() error = %v, want ErrMessageValidation", err)
	}

	_, err = message.New("12345", message.WithInteractiveReplyButtons(
		&message.InteractiveReplyButtonsRequest{
			Body:    "pick one",
			Buttons: replyButtons(message.MaxReplyButtons),
		}))
	if err != nil {
		t.Fatalf("New() at the limit should pass, got %v", err)
	}
}

func TestNew_RejectsOverlongButtonTitle(t *testing.T) {
	_, err := message.New("12345", message.WithInteractiveReplyButtons(
		&message.InteractiveReplyButtonsRequest{
			Body: "pick one",
			Buttons: []*message.InteractiveReplyButton{
				{ID: "a", Title: strings.Repeat("x", message.MaxButtonTitleLength+1)},
			},
		}))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() error = %v, want ErrMessageValidation", err)
	}
}

func TestNew_RejectsOverlongButtonID(t *testing.T) {
	_, err := message.New("12345", message.WithInteractiveReplyButtons(
		&message.InteractiveReplyButtonsRequest{
			Body: "pick one",
			Buttons: []*message.InteractiveReplyButton{
				{ID: strings.Repeat("x", message.MaxButtonIDLength+1), Title: "Go"},
			},
		}))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() error = %v, want ErrMessageValidation", err)
	}
}

func listMessage(sections []*message.InteractiveSection) *message.Interactive {
	return message.NewInteractiveMessageContent(
		message.TypeInteractiveList,
		message.WithInteractiveBody("choose"),
		message.WithInteractiveAction(&message.InteractiveAction{
			Button:   "Open",
			Sections: sections,
		}),
	)
}

func TestNew_RejectsListWithoutSections(t *testing.T) {
	_, err := message.New("12345", message.WithInteractiveMessage(listMessage(nil)))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() error = %v, want ErrMessageValidation", err)
	}
}

func TestNew_ListSectionAndRowLimits(t *testing.T) {
	row := &message.InteractiveSectionRow{ID: "r", Title: "Row"}

	sections := make([]*message.InteractiveSection, message.MaxListSections)
	for i := range sections {
		sections[i] = &message.InteractiveSection{Title: "S"}
	}
	sections[0].Rows = []*message.InteractiveSectionRow{row}

	if _, err := message.New("12345", message.WithInteractiveMessage(listMessage(sections))); err != nil {
		t.Fatalf("New() with %d sections should pass, got %v", message.MaxListSections, err)
	}

	tooMany := append(sections, &message.InteractiveSection{Title: "S"})
	_, err := message.New("12345", message.WithInteractiveMessage(listMessage(tooMany)))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() with %d sections error = %v, want ErrMessageValidation", len(tooMany), err)
	}

	rows := make([]*message.InteractiveSectionRow, message.MaxListRows+1)
	for i := range rows {
		rows[i] = row
	}
	_, err = message.New("12345", message.WithInteractiveMessage(listMessage(
		[]*message.InteractiveSection{{Title: "S", Rows: rows}})))
	if !errors.Is(err, message.ErrMessageValidation) {
		t.Fatalf("New() with %d rows error = %v, want ErrMessageValidation", len(rows), err)
	}
}

func TestNew_RejectsOverlongInteractiveTexts(t *testing.T) {
	cases := []struct {
		name    string
		content *message.Interactive
	}{
		{
			name: "header",
			content: message.NewInteractiveMessageContent(
				message.TypeInteractiveButton,
				message.WithInteractiveBody("b"),
				message.WithInteractiveHeader(message.InteractiveHeaderText(
					strings.Repeat("h", message.MaxInteractiveHeaderLength+1))),
			),
		},
		{
			name: "footer",
			content: message.NewInteractiveMessageContent(
				message.TypeInteractiveButton,
				message.WithInteractiveBody("b"),
				message.WithInteractiveFooter(
					strings.Repeat("f", message.MaxInteractiveFooterLength+1)),
			),
		},
		{
			name: "body",
			content: message.NewInteractiveMessageContent(
				message.TypeInteractiveButton,
				message.WithInteractiveBody(
					strings.Repeat("b", message.MaxInteractiveBodyLength+1)),
			),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := message.New("12345", message.WithInteractiveMessage(tt.content))
			if !errors.Is(err, message.ErrMessageValidation) {
				t.Fatalf("New() error = %v, want ErrMessageValidation", err)
			}
		})
	}
}
