package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ports/primary"
)

// Menu options, in display order.
const (
	optionList = iota + 1
	optionInsert
	optionDelete
	optionExit
)

// SessionOpener validates a data file path and returns a service bound to it.
// Rejected paths return an error wrapping donation.ErrPathNotFound.
type SessionOpener func(ctx context.Context, path string) (primary.DonationService, error)

// Shell is the interactive menu. It owns the only mutable session state: the
// service for the current data file, or none while the path is unknown.
type Shell struct {
	open SessionOpener
	in   *bufio.Reader
	out  io.Writer
}

// NewShell creates a shell reading answers from in and writing prompts to out.
func NewShell(open SessionOpener, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		open: open,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run drives the shell until the user exits or input ends.
// initialPath, when non-empty, is tried before prompting.
func (s *Shell) Run(ctx context.Context, initialPath string) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headerStyle.Sprint("Blood donation registry"))

	var service primary.DonationService
	if initialPath != "" {
		svc, err := s.open(ctx, initialPath)
		if err != nil {
			s.printError(err)
		} else {
			fmt.Fprintf(s.out, "%s Using %s\n", checkMark(), initialPath)
			service = svc
		}
	}

	for {
		if service == nil {
			svc, err := s.promptPath(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			service = svc
		}

		keep, err := s.menu(ctx, NewDonationAdapter(service, s.out))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !keep {
			service = nil
		}
	}
}

// promptPath asks for a data file path until one exists.
func (s *Shell) promptPath(ctx context.Context) (primary.DonationService, error) {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Enter the path of the CSV file:")

		path, err := s.readLine()
		if err != nil {
			return nil, err
		}

		service, err := s.open(ctx, path)
		if errors.Is(err, donation.ErrPathNotFound) {
			fmt.Fprintln(s.out, errorStyle.Sprint("File not found. Enter a valid path."))
			continue
		}
		if err != nil {
			fmt.Fprintln(s.out, errorStyle.Sprintf("Error reading the file path: %v. Try again.", err))
			continue
		}

		fmt.Fprintf(s.out, "%s File found!\n", checkMark())
		return service, nil
	}
}

// menu shows the menu until the session ends.
// Returns false when the file path must be asked for again.
// Choosing exit returns io.EOF.
func (s *Shell) menu(ctx context.Context, adapter *DonationAdapter) (bool, error) {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, headerStyle.Sprint("Menu:"))
		fmt.Fprintln(s.out, "1. Show file contents")
		fmt.Fprintln(s.out, "2. Insert new donation")
		fmt.Fprintln(s.out, "3. Delete donation by id")
		fmt.Fprintln(s.out, "4. Exit")
		fmt.Fprintln(s.out, "Choose an option:")

		input, err := s.readLine()
		if err != nil {
			return false, err
		}

		choice, err := donation.ParseMenuChoice(input, optionExit)
		if err != nil {
			s.printError(err)
			continue
		}

		switch choice {
		case optionList:
			if err := adapter.List(ctx); err != nil {
				s.printError(err)
				return false, nil
			}
		case optionInsert:
			if err := s.insert(ctx, adapter); err != nil {
				if errors.Is(err, io.EOF) {
					return false, err
				}
				s.printError(err)
			}
		case optionDelete:
			if err := s.delete(ctx, adapter); err != nil {
				if errors.Is(err, io.EOF) {
					return false, err
				}
				s.printError(err)
			}
		case optionExit:
			fmt.Fprintln(s.out, "Closing application.")
			return false, io.EOF
		}
	}
}

// insert previews the generated id, collects the fields and appends the record.
func (s *Shell) insert(ctx context.Context, adapter *DonationAdapter) error {
	if _, err := adapter.PreviewID(ctx); err != nil {
		return err
	}

	var req primary.InsertDonationRequest
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Name:", &req.Name},
		{"National ID:", &req.NationalID},
		{"Birth date (YYYY-MM-DD):", &req.BirthDate},
		{"Blood type:", &req.BloodType},
	}
	for _, f := range fields {
		value, err := s.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	volume, err := s.ask("Volume donated (ml):")
	if err != nil {
		return err
	}
	req.VolumeML, err = strconv.Atoi(volume)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w: volume %q is not a number", donation.ErrFormat, volume)
	}

	return adapter.Insert(ctx, req)
}

// delete asks for an id and removes the first matching record.
func (s *Shell) delete(ctx context.Context, adapter *DonationAdapter) error {
	input, err := s.ask("Enter the id of the donation to delete:")
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("failed to delete donation: %w: id %q is not a number", donation.ErrFormat, input)
	}

	return adapter.Delete(ctx, id)
}

func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	return s.readLine()
}

// readLine returns the next input line without its terminator.
// io.EOF is returned only when no more input is available.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) printError(err error) {
	fmt.Fprintln(s.out, errorStyle.Sprintf("Error: %v", err))
}
