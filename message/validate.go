//  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
//
//  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
//  and associated documentation files (the “Software”), to deal in the Software without restriction,
//  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
//  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
//  subject to the following conditions:
//
//  The above copyright notice and this permission notice shall be included in all copies or substantial
//  portions of the Software.
//
//  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
//  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
//  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
//  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
//  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package message

import (
	"errors"
	"fmt"
)

// ErrMessageValidation wraps every client-side limit violation New detects,
// so a send that the provider would reject anyway fails before any HTTP
// call is made.
var ErrMessageValidation = errors.New("message validation failed")

// The provider's documented payload limits.
const (
	MaxTextBodyLength          = 4096
	MaxInteractiveHeaderLength = 60
	MaxInteractiveBodyLength   = 4096
	MaxInteractiveFooterLength = 60
	MaxReplyButtons            = 3
	MaxButtonTitleLength       = 20
	MaxButtonIDLength          = 256
	MaxListSections            = 10
	MaxListRows                = 10
	MaxListRowTitleLength      = 24
	MaxListRowIDLength         = 200
)

// Validate checks the assembled message against the provider's payload
// limits. New calls it after every option has run; sends built directly via
// the struct can call it themselves.
func (m *Message) Validate() error {
	if m.Text != nil && len(m.Text.Body) > MaxTextBodyLength {
		return fmt.Errorf("%w: text body exceeds %d characters", ErrMessageValidation, MaxTextBodyLength)
	}

	if m.Interactive != nil {
		if err := m.Interactive.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interactive) validate() error {
	if i.Header != nil && len(i.Header.Text) > MaxInteractiveHeaderLength {
		return fmt.Errorf("%w: interactive header exceeds %d characters",
			ErrMessageValidation, MaxInteractiveHeaderLength)
	}

	if i.Body != nil && len(i.Body.Text) > MaxInteractiveBodyLength {
		return fmt.Errorf("%w: interactive body exceeds %d characters",
			ErrMessageValidation, MaxInteractiveBodyLength)
	}

	if i.Footer != nil && len(i.Footer.Text) > MaxInteractiveFooterLength {
		return fmt.Errorf("%w: interactive footer exceeds %d characters",
			ErrMessageValidation, MaxInteractiveFooterLength)
	}

	if i.Action == nil {
		return nil
	}

	if i.Type == TypeInteractiveButton {
		if err := validateReplyButtons(i.Action.Buttons); err != nil {
			return err
		}
	}

	if i.Type == TypeInteractiveList {
		if err := validateListSections(i.Action.Sections); err != nil {
			return err
		}
	}

	return nil
}

func validateReplyButtons(buttons []*InteractiveButton) error {
	if len(buttons) > MaxReplyButtons {
		return fmt.Errorf("%w: %d reply buttons exceed the limit of %d",
			ErrMessageValidation, len(buttons), MaxReplyButtons)
	}

	for _, button := range buttons {
		if button == nil || button.Reply == nil {
			continue
		}
		if len(button.Reply.Title) > MaxButtonTitleLength {
			return fmt.Errorf("%w: button title %q exceeds %d characters",
				ErrMessageValidation, button.Reply.Title, MaxButtonTitleLength)
		}
		if len(button.Reply.ID) > MaxButtonIDLength {
			return fmt.Errorf("%w: button id exceeds %d bytes",
				ErrMessageValidation, MaxButtonIDLength)
		}
	}

	return nil
}

func validateListSections(sections []*InteractiveSection) error {
	if len(sections) == 0 {
		return fmt.Errorf("%w: a list message needs at least one section", ErrMessageValidation)
	}

	if len(sections) > MaxListSections {
		return fmt.Errorf("%w: %d sections exceed the limit of %d",
			ErrMessageValidation, len(sections), MaxListSections)
	}

	totalRows := 0
	for _, section := range sections {
		if section == nil {
			continue
		}

		totalRows += len(section.Rows)
		for _, row := range section.Rows {
			if row == nil {
				continue
			}
			if len(row.Title) > MaxListRowTitleLength {
				return fmt.Errorf("%w: row title %q exceeds %d characters",
					ErrMessageValidation, row.Title, MaxListRowTitleLength)
			}
			if len(row.ID) > MaxListRowIDLength {
				return fmt.Errorf("%w: row id exceeds %d bytes",
					ErrMessageValidation, MaxListRowIDLength)
			}
		}
	}

	if totalRows > MaxListRows {
		return fmt.Errorf("%w: %d rows exceed the limit of %d across all sections",
			ErrMessageValidation, totalRows, MaxListRows)
	}

	return nil
}
