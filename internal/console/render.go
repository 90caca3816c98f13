package console

import (
	"fmt"

	"quehaypahacer/internal/models"
)

// renderEvents prints a numbered event list. With actions enabled and a
// logged-in user, the list is followed by the detail/favorite options.
func (c *Console) renderEvents(events []models.Event, withActions bool) {
	for i, e := range events {
		fmt.Fprintf(c.out, "\n[%d] %s\n", i+1, e.Name)
		fmt.Fprintf(c.out, "  Location: %s | Date: %s | Category: %s\n", e.Location, e.Date, e.Category)
		if e.IsUpcoming() {
			fmt.Fprintln(c.out, "  Happening in the next few days!")
		}
		fmt.Fprintf(c.out, "  Capacity: %d\n", e.Capacity)
		fmt.Fprintf(c.out, "  %s\n", e.Description)
		fmt.Fprintf(c.out, "  Organizer: %s\n", c.events.OrganizerName(e.OrganizerID))

		if c.session.Authenticated() {
			marker := "not a favorite"
			if c.session.User.IsFavorite(e.ID) {
				marker = "in your favorites"
			}
			fmt.Fprintf(c.out, "  * %s\n", marker)
		}
	}

	if !withActions || len(events) == 0 {
		return
	}
	if !c.session.Authenticated() {
		c.prompt("\nPress Enter to continue...")
		return
	}
	c.listActions(events)
}

func (c *Console) listActions(events []models.Event) {
	fmt.Fprintln(c.out, "\nOptions:")
	fmt.Fprintln(c.out, "1. View event details")
	fmt.Fprintln(c.out, "2. Add to favorites")
	fmt.Fprintln(c.out, "3. Remove from favorites")
	fmt.Fprintln(c.out, "4. Back")

	choice := c.promptChoice("Select an option (1-4): ")
	if choice != "1" && choice != "2" && choice != "3" {
		return
	}

	num, ok := c.promptInt("Event number: ")
	if !ok || num < 1 || num > len(events) {
		if ok {
			fmt.Fprintln(c.out, "Invalid number.")
		}
		return
	}
	event := events[num-1]

	switch choice {
	case "1":
		// Re-fetch so the detail view reflects the stored row.
		fresh, err := c.events.GetByID(event.ID)
		if err != nil {
			c.printServiceError(err)
			return
		}
		c.eventDetail(*fresh)
	case "2":
		if err := c.favorites.Add(c.session, event.ID); err != nil {
			c.printServiceError(err)
			return
		}
		fmt.Fprintln(c.out, "Event added to favorites!")
	case "3":
		if err := c.favorites.Remove(c.session, event.ID); err != nil {
			c.printServiceError(err)
			return
		}
		fmt.Fprintln(c.out, "Event removed from favorites.")
	}
}

func (c *Console) eventDetail(event models.Event) {
	fmt.Fprintln(c.out, "\n--- Event Details ---")
	fmt.Fprintf(c.out, "Event: %s\n", event.Name)
	fmt.Fprintf(c.out, "Location: %s\n", event.Location)
	fmt.Fprintf(c.out, "Date: %s\n", event.Date)
	fmt.Fprintf(c.out, "Category: %s\n", event.Category)
	fmt.Fprintf(c.out, "Capacity: %d\n", event.Capacity)
	fmt.Fprintf(c.out, "Description: %s\n", event.Description)
	fmt.Fprintf(c.out, "Organizer: %s\n", c.events.OrganizerName(event.OrganizerID))

	if !c.session.Authenticated() {
		return
	}

	fmt.Fprintln(c.out, "\nOptions:")
	favorited := c.session.User.IsFavorite(event.ID)
	if favorited {
		fmt.Fprintln(c.out, "1. Remove from favorites")
	} else {
		fmt.Fprintln(c.out, "1. Add to favorites")
	}
	fmt.Fprintln(c.out, "2. Back")

	if c.promptChoice("Select an option: ") != "1" {
		return
	}
	var err error
	if favorited {
		err = c.favorites.Remove(c.session, event.ID)
	} else {
		err = c.favorites.Add(c.session, event.ID)
	}
	if err != nil {
		c.printServiceError(err)
		return
	}
	fmt.Fprintln(c.out, "Favorites updated.")
}

func (c *Console) showFavorites() {
	fmt.Fprintln(c.out, "\n--- My Favorite Events ---")
	favorites, err := c.favorites.List(c.session)
	if err != nil {
		c.printServiceError(err)
		return
	}
	if len(favorites) == 0 {
		fmt.Fprintln(c.out, "You have no favorite events yet.")
		return
	}
	c.renderEvents(favorites, true)
}

func (c *Console) showRecommendations() {
	fmt.Fprintln(c.out, "\n--- Recommended For You ---")
	recommended, err := c.preferences.Recommend(c.session)
	if err != nil {
		c.printServiceError(err)
		return
	}
	if len(recommended) == 0 {
		fmt.Fprintln(c.out, "No recommendations available. Add categories to your preferences.")
		return
	}
	c.renderEvents(recommended, true)
}
