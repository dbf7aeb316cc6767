// Package command parses shell input lines and dispatches them against
// a book. It owns the mapping from core errors to user-facing messages;
// the core packages never print.
package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/browse"
	"github.com/smileynet/rolodex/internal/contact"
)

// Command names, longest first, so "show days to birthday" wins over
// "show all" and "show all" wins over nothing.
var commandNames = []string{
	"show days to birthday",
	"show all",
	"good bye",
	"birthday",
	"change",
	"delete",
	"hello",
	"close",
	"phone",
	"help",
	"exit",
	"add",
}

// goodbyeAlias is the single-character shortcut for ending the session.
const goodbyeAlias = "."

// Parse splits an input line into a command name and its arguments.
// Matching is case-insensitive and prefers the longest command name
// whose prefix matches a word boundary. Unrecognized input yields the
// name "unknown".
func Parse(line string) (string, []string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == goodbyeAlias {
		return "good bye", nil
	}

	lower := strings.ToLower(trimmed)
	for _, name := range commandNames {
		if !strings.HasPrefix(lower, name) {
			continue
		}
		rest := trimmed[len(name):]
		if rest != "" && !strings.HasPrefix(rest, " ") {
			continue
		}
		return name, strings.Fields(rest)
	}
	return "unknown", nil
}

// Result is the outcome of dispatching one line of input.
type Result struct {
	Output   string // user-facing message, already formatted
	Quit     bool   // the session should end
	Browse   bool   // open the paginated browser (interactive sessions)
	PageSize int    // page size for Browse; set when Browse is true
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the time source used for birthday countdowns.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithPageSize sets the default page size for contact listings.
func WithPageSize(n int) Option {
	return func(d *Dispatcher) { d.pageSize = n }
}

// Dispatcher executes parsed commands against a single book.
type Dispatcher struct {
	book     *book.Book
	now      func() time.Time
	pageSize int
}

// NewDispatcher creates a Dispatcher over b.
func NewDispatcher(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:     b,
		now:      time.Now,
		pageSize: 5,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch parses line, runs the matching handler, and converts any
// handler error into a user-facing message. The returned error mirrors
// Result.Output so scripted callers can map it to an exit code; state
// is never left partially mutated on failure.
func (d *Dispatcher) Dispatch(line string) (Result, error) {
	name, args := Parse(line)

	var (
		res Result
		err error
	)
	switch name {
	case "hello":
		res.Output = "How can I help you?"
	case "add":
		res.Output, err = d.add(args)
	case "change":
		res.Output, err = d.change(args)
	case "phone":
		res.Output, err = d.phone(args)
	case "delete":
		res.Output, err = d.delete(args)
	case "birthday":
		res.Output, err = d.birthday(args)
	case "show days to birthday":
		res.Output, err = d.daysToBirthday(args)
	case "show all":
		res, err = d.showAll(args)
	case "help":
		res.Output = helpText
	case "good bye", "close", "exit":
		res.Output = "Good bye!"
		res.Quit = true
	default:
		res.Output = "Unknown command. Try again, or type \"help\"."
	}

	if err != nil {
		res.Output = "Error: " + err.Error()
	}
	return res, err
}

// add creates a contact, or appends a phone to an existing one.
// An existing contact also has its birthday updated when one is given.
func (d *Dispatcher) add(args []string) (string, error) {
	if len(args) < 2 {
		return "", usageErr("add <name> <phone> [DD-MM-YYYY]")
	}
	name, number := args[0], args[1]
	var birthday string
	if len(args) > 2 {
		birthday = args[2]
	}

	rec, ok := d.book.Find(name)
	if !ok {
		rec, err := contact.New(name, birthday)
		if err != nil {
			return "", err
		}
		if _, err := rec.AddPhone(number); err != nil {
			return "", err
		}
		if err := d.book.Add(rec); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact %q with phone %q was added", name, number), nil
	}

	if _, found := rec.FindPhone(number); found {
		return "", fmt.Errorf("command: contact %q already has phone %q", name, number)
	}
	// Validate every input before mutating anything.
	if _, err := contact.NewPhone(number); err != nil {
		return "", err
	}
	var msgs []string
	if birthday != "" {
		msg, err := rec.SetBirthday(birthday)
		if err != nil {
			return "", err
		}
		msgs = append(msgs, msg)
	}
	msg, err := rec.AddPhone(number)
	if err != nil {
		return "", err
	}
	msgs = append(msgs, msg)
	return strings.Join(msgs, "\n"), nil
}

// change replaces one of a contact's phone numbers.
func (d *Dispatcher) change(args []string) (string, error) {
	if len(args) < 3 {
		return "", usageErr("change <name> <old phone> <new phone>")
	}
	name, oldNum, newNum := args[0], args[1], args[2]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", notFoundErr(name)
	}
	if err := rec.EditPhone(oldNum, newNum); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %q for contact %q was changed to %q", oldNum, name, newNum), nil
}

// phone lists a contact's phone numbers.
func (d *Dispatcher) phone(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageErr("phone <name>")
	}
	name := args[0]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", notFoundErr(name)
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("Contact %q has no phone numbers", name), nil
	}
	nums := make([]string, len(phones))
	for i, p := range phones {
		nums[i] = p.String()
	}
	return fmt.Sprintf("Phones for %q: %s", name, strings.Join(nums, "; ")), nil
}

// delete removes a contact. Deleting an absent contact is not an error.
func (d *Dispatcher) delete(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageErr("delete <name>")
	}
	name := args[0]
	d.book.Delete(name)
	return fmt.Sprintf("Contact %q is no longer in the book", name), nil
}

// birthday sets or replaces a contact's birthday.
func (d *Dispatcher) birthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", usageErr("birthday <name> <DD-MM-YYYY>")
	}
	name, date := args[0], args[1]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", notFoundErr(name)
	}
	return rec.SetBirthday(date)
}

// daysToBirthday reports the countdown to a contact's next birthday.
func (d *Dispatcher) daysToBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageErr("show days to birthday <name>")
	}
	name := args[0]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", notFoundErr(name)
	}
	days, err := rec.DaysToBirthday(d.now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Days to the next birthday for contact %q: %d", name, days), nil
}

// showAll produces the full listing. Output carries the plain table;
// Browse tells interactive sessions to open the pager instead.
func (d *Dispatcher) showAll(args []string) (Result, error) {
	pageSize := d.pageSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return Result{}, fmt.Errorf("command: page size must be a positive number, got %q", args[0])
		}
		pageSize = n
	}
	return Result{
		Output:   browse.Table(d.book, pageSize),
		Browse:   true,
		PageSize: pageSize,
	}, nil
}

// usageErr reports a call with missing or malformed arguments.
func usageErr(usage string) error {
	return fmt.Errorf("command: not all parameters were given, usage: %s", usage)
}

// notFoundErr reports a command targeting a contact that is not in the book.
func notFoundErr(name string) error {
	return fmt.Errorf("command: contact %q does not exist in the book, add it first", name)
}

const helpText = `Available commands:
  hello                                greeting
  add <name> <phone> [DD-MM-YYYY]      add a contact, or a phone to an existing one
  change <name> <old> <new>            replace a contact's phone number
  phone <name>                         list a contact's phone numbers
  birthday <name> <DD-MM-YYYY>         set a contact's birthday
  show days to birthday <name>         countdown to the next birthday
  show all [pagesize]                  list contacts page by page
  delete <name>                        remove a contact
  help                                 this text
  good bye | close | exit | .          end the session`
