// Package console implements the interactive text menus. It is a thin
// front end: all state and rules live in the services, and every service
// failure is displayed and re-prompted, never fatal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"
	"quehaypahacer/internal/services"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Console drives the blocking menu loop. It owns the single session of
// the process.
type Console struct {
	auth        *services.AuthService
	events      *services.EventService
	favorites   *services.FavoriteService
	preferences *services.PreferenceService

	in      *bufio.Scanner
	out     io.Writer
	session *models.Session
	eof     bool

	// passwordFd is the file descriptor of the input stream when it is a
	// real file, or -1 when input comes from elsewhere (pipes, tests).
	passwordFd int
}

// New creates a console reading from in and writing to out.
func New(auth *services.AuthService, events *services.EventService, favorites *services.FavoriteService, preferences *services.PreferenceService, in io.Reader, out io.Writer) *Console {
	passwordFd := -1
	if f, ok := in.(*os.File); ok {
		passwordFd = int(f.Fd())
	}
	return &Console{
		auth:        auth,
		events:      events,
		favorites:   favorites,
		preferences: preferences,
		in:          bufio.NewScanner(in),
		out:         out,
		passwordFd:  passwordFd,
	}
}

// Run shows the main menu until the user quits or input ends.
func (c *Console) Run() {
	for !c.eof {
		fmt.Fprintln(c.out, "\n=== QueHayPaHacer? ===")
		fmt.Fprintln(c.out, "1. Log in")
		fmt.Fprintln(c.out, "2. Register")
		fmt.Fprintln(c.out, "3. Explore events")
		fmt.Fprintln(c.out, "4. Quit")

		switch c.promptChoice("Select an option: ") {
		case "1":
			c.login()
		case "2":
			c.register()
		case "3":
			c.exploreEvents()
		case "4":
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			if !c.eof {
				fmt.Fprintln(c.out, "Invalid option. Try again.")
			}
		}
	}
}

func (c *Console) login() {
	fmt.Fprintln(c.out, "\n--- Log In ---")
	email := c.prompt("Email: ")
	password := c.promptPassword("Password: ")

	session, err := c.auth.Login(email, password)
	if err != nil {
		c.printServiceError(err)
		return
	}
	c.session = session
	fmt.Fprintf(c.out, "Welcome, %s!\n", session.User.Name)
	c.userMenu()
}

func (c *Console) register() {
	fmt.Fprintln(c.out, "\n--- Register ---")
	name := c.prompt("Full name: ")
	email := c.prompt("Email: ")
	password := c.promptPassword("Password (at least 6 characters): ")

	if err := c.auth.Register(name, email, password); err != nil {
		c.printServiceError(err)
		return
	}
	fmt.Fprintln(c.out, "User registered successfully!")
}

func (c *Console) userMenu() {
	for c.session.Authenticated() && !c.eof {
		c.printReminders()

		fmt.Fprintln(c.out, "\n=== Main Menu ===")
		fmt.Fprintf(c.out, "Logged in as %s\n", c.session.User.Name)
		fmt.Fprintln(c.out, "1. Explore events")
		fmt.Fprintln(c.out, "2. My favorites")
		fmt.Fprintln(c.out, "3. Create event")
		fmt.Fprintln(c.out, "4. Recommendations")
		fmt.Fprintln(c.out, "5. Preferences")
		fmt.Fprintln(c.out, "6. Log out")

		switch c.promptChoice("Select an option: ") {
		case "1":
			c.exploreEvents()
		case "2":
			c.showFavorites()
		case "3":
			c.createEvent()
		case "4":
			c.showRecommendations()
		case "5":
			c.managePreferences()
		case "6":
			c.auth.Logout(c.session)
			c.session = nil
			fmt.Fprintln(c.out, "Logged out.")
			return
		default:
			if !c.eof {
				fmt.Fprintln(c.out, "Invalid option. Try again.")
			}
		}
	}
}

func (c *Console) exploreEvents() {
	fmt.Fprintln(c.out, "\n--- Explore Events ---")
	fmt.Fprintln(c.out, "Filters (leave blank to skip):")

	filter := repositories.EventFilter{
		Category: c.prompt("Category: "),
		Location: c.prompt("Location: "),
		Date:     c.prompt("Date (YYYY-MM-DD): "),
	}

	fmt.Fprintln(c.out, "\nSort by:")
	fmt.Fprintln(c.out, "1. Date (default)")
	fmt.Fprintln(c.out, "2. Name")
	fmt.Fprintln(c.out, "3. Category")
	switch c.promptChoice("Select order (1-3): ") {
	case "2":
		filter.SortBy = "name"
	case "3":
		filter.SortBy = "category"
	default:
		filter.SortBy = "date"
	}

	events, err := c.events.Explore(filter)
	if err != nil {
		c.printServiceError(err)
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(c.out, "No events matched the selected filters.")
		return
	}
	c.renderEvents(events, true)
}

func (c *Console) createEvent() {
	fmt.Fprintln(c.out, "\n--- Create Event ---")
	in := services.CreateEventInput{
		Name:     c.prompt("Event name: "),
		Location: c.prompt("Location: "),
		Date:     c.prompt("Date (YYYY-MM-DD): "),
		Category: c.prompt("Category: "),
	}
	capacity, ok := c.promptInt("Capacity: ")
	if !ok {
		return
	}
	in.Capacity = capacity
	in.Description = c.prompt("Description: ")

	if _, err := c.events.Create(c.session, in); err != nil {
		c.printServiceError(err)
		return
	}
	fmt.Fprintln(c.out, "Event created successfully!")
}

func (c *Console) managePreferences() {
	fmt.Fprintln(c.out, "\n--- My Preferences ---")
	current := strings.Join(c.session.User.PreferredCategories, ", ")
	if current == "" {
		current = "none"
	}
	fmt.Fprintf(c.out, "Preferred categories: %s\n", current)

	fmt.Fprintln(c.out, "\n1. Add category")
	fmt.Fprintln(c.out, "2. Remove category")
	fmt.Fprintln(c.out, "3. Back")

	switch c.promptChoice("Select an option: ") {
	case "1":
		label := c.prompt("New category: ")
		if err := c.preferences.AddCategory(c.session, label); err != nil {
			c.printServiceError(err)
			return
		}
		fmt.Fprintln(c.out, "Category added!")
	case "2":
		categories := c.session.User.PreferredCategories
		if len(categories) == 0 {
			fmt.Fprintln(c.out, "No categories to remove.")
			return
		}
		fmt.Fprintln(c.out, "Select the category to remove:")
		for i, cat := range categories {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, cat)
		}
		num, ok := c.promptInt("Number: ")
		if !ok {
			return
		}
		if err := c.preferences.RemoveCategoryAt(c.session, num-1); err != nil {
			c.printServiceError(err)
			return
		}
		fmt.Fprintln(c.out, "Category removed!")
	}
}

// printReminders runs the opportunistic reminder check before each
// authenticated menu render.
func (c *Console) printReminders() {
	events, err := c.favorites.Upcoming(c.session)
	if err != nil || len(events) == 0 {
		return
	}
	fmt.Fprintln(c.out, "\n=== REMINDERS ===")
	for _, e := range events {
		fmt.Fprintf(c.out, "Don't forget '%s' on %s!\n", e.Name, e.Date)
	}
	fmt.Fprintln(c.out, "=================")
}

func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return c.in.Text()
}

func (c *Console) promptChoice(label string) string {
	return strings.TrimSpace(c.prompt(label))
}

// promptPassword reads without echo when the input stream is a terminal
// and falls back to a plain line read otherwise (pipes, tests).
func (c *Console) promptPassword(label string) string {
	if c.passwordFd < 0 || !term.IsTerminal(c.passwordFd) {
		return c.prompt(label)
	}
	fmt.Fprint(c.out, label)
	raw, err := readPassword(c.passwordFd)
	fmt.Fprintln(c.out)
	if err != nil {
		return ""
	}
	return string(raw)
}

// promptInt parses a numeric answer, reporting invalid input with a
// distinct message.
func (c *Console) promptInt(label string) (int, bool) {
	raw := strings.TrimSpace(c.prompt(label))
	n, err := strconv.Atoi(raw)
	if err != nil {
		if !c.eof {
			fmt.Fprintln(c.out, "Invalid number.")
		}
		return 0, false
	}
	return n, true
}

func (c *Console) printServiceError(err error) {
	// Not-found and validation failures read fine as-is; anything else
	// keeps its wrapped context for the log but shows a short message.
	if errors.Is(err, services.ErrNotLoggedIn) {
		fmt.Fprintln(c.out, "Error: you must log in first.")
		return
	}
	fmt.Fprintf(c.out, "Error: %v\n", err)
}
