package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hoteldesk/hotel-booking-backend/internal/app"
	"github.com/hoteldesk/hotel-booking-backend/internal/booking"
	"github.com/hoteldesk/hotel-booking-backend/internal/config"
	"github.com/hoteldesk/hotel-booking-backend/internal/guest"
	"github.com/hoteldesk/hotel-booking-backend/internal/room"
)

const dateLayout = "2006-01-02"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init application: %v", err)
	}

	cli := &console{in: bufio.NewScanner(os.Stdin), app: c}
	cli.run(ctx)
}

// console is a thin prompt/response wrapper over the services. Input is
// validated here so the services only ever see well-formed values.
type console struct {
	in  *bufio.Scanner
	app *app.Container
}

func (c *console) run(ctx context.Context) {
	for {
		fmt.Println("\n===== HOTEL MANAGEMENT =====")
		fmt.Println("1 - Rooms")
		fmt.Println("2 - Guests")
		fmt.Println("3 - Reservations")
		fmt.Println("0 - Exit")

		switch c.readInt("Option: ") {
		case 1:
			c.roomMenu(ctx)
		case 2:
			c.guestMenu(ctx)
		case 3:
			c.reservationMenu(ctx)
		case 0:
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (c *console) roomMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- ROOM MENU ---")
		fmt.Println("1 - Add Room")
		fmt.Println("2 - List Rooms")
		fmt.Println("3 - List Available Rooms Today")
		fmt.Println("4 - List Occupied Rooms Today")
		fmt.Println("5 - Remove Room")
		fmt.Println("0 - Back")

		switch c.readInt("Option: ") {
		case 1:
			c.addRoom(ctx)
		case 2:
			c.listRooms(ctx)
		case 3:
			c.listRoomsByOccupancy(ctx, false)
		case 4:
			c.listRoomsByOccupancy(ctx, true)
		case 5:
			c.removeRoom(ctx)
		case 0:
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (c *console) guestMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- GUEST MENU ---")
		fmt.Println("1 - Add Guest")
		fmt.Println("2 - List Guests")
		fmt.Println("3 - Remove Guest")
		fmt.Println("0 - Back")

		switch c.readInt("Option: ") {
		case 1:
			c.addGuest(ctx)
		case 2:
			c.listGuests(ctx)
		case 3:
			c.removeGuest(ctx)
		case 0:
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (c *console) reservationMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- RESERVATION MENU ---")
		fmt.Println("1 - Create Reservation")
		fmt.Println("2 - List All Reservations")
		fmt.Println("3 - List Reservations By Room")
		fmt.Println("4 - List Reservations By Guest")
		fmt.Println("5 - Cancel Reservation")
		fmt.Println("0 - Back")

		switch c.readInt("Option: ") {
		case 1:
			c.createReservation(ctx)
		case 2:
			c.listAllReservations(ctx)
		case 3:
			c.listReservationsByRoom(ctx)
		case 4:
			c.listReservationsByGuest(ctx)
		case 5:
			c.cancelReservation(ctx)
		case 0:
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (c *console) addRoom(ctx context.Context) {
	req := room.CreateRequest{
		Number:   c.readInt("Room number: "),
		Capacity: c.readInt("Capacity: "),
	}
	rm, err := c.app.Rooms.Create(ctx, req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Room added with ID:", rm.ID)
}

func (c *console) listRooms(ctx context.Context) {
	rooms, err := c.app.Rooms.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms.")
		return
	}
	for _, rm := range rooms {
		printRoom(rm)
	}
}

func (c *console) listRoomsByOccupancy(ctx context.Context, occupied bool) {
	var (
		rooms []*room.Room
		err   error
	)
	if occupied {
		rooms, err = c.app.Bookings.OccupiedRooms(ctx, time.Now())
	} else {
		rooms, err = c.app.Bookings.AvailableRooms(ctx, time.Now())
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms.")
		return
	}
	for _, rm := range rooms {
		printRoom(rm)
	}
}

func (c *console) removeRoom(ctx context.Context) {
	id := c.readInt("Room ID to remove: ")
	if err := c.app.Bookings.RemoveRoom(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Room removed.")
}

func (c *console) addGuest(ctx context.Context) {
	req := guest.CreateRequest{
		Name:           c.readLine("Name: "),
		Email:          c.readLine("Email: "),
		Contact:        c.readInt("Contact: "),
		DocumentType:   c.readLine("Document type: "),
		DocumentNumber: c.readInt("Document number: "),
	}
	g, err := c.app.Guests.Create(ctx, req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Guest added with ID:", g.ID)
}

func (c *console) listGuests(ctx context.Context) {
	guests, err := c.app.Guests.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(guests) == 0 {
		fmt.Println("No guests.")
		return
	}
	for _, g := range guests {
		fmt.Printf("Guest #%d: %s <%s> contact=%d %s/%d\n",
			g.ID, g.Name, g.Email, g.Contact, g.DocumentType, g.DocumentNumber)
	}
}

func (c *console) removeGuest(ctx context.Context) {
	id := c.readInt("Guest ID to remove: ")
	if err := c.app.Bookings.RemoveGuest(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Guest removed.")
}

func (c *console) createReservation(ctx context.Context) {
	req := booking.CreateRequest{
		RoomID:    c.readInt("Room ID: "),
		GuestID:   c.readInt("Guest ID: "),
		NumGuests: c.readInt("Number of guests: "),
		StartDate: c.readDate("Start date (YYYY-MM-DD): "),
		EndDate:   c.readDate("End date (YYYY-MM-DD): "),
	}
	res, err := c.app.Bookings.Create(ctx, req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Reservation created with ID:", res.ID)
}

func (c *console) listAllReservations(ctx context.Context) {
	list, err := c.app.Bookings.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printReservations(list, "No reservations.")
}

func (c *console) listReservationsByRoom(ctx context.Context) {
	id := c.readInt("Room ID: ")
	list, err := c.app.Bookings.ListByRoom(ctx, id, time.Now())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printReservations(list, "No present/future reservations for that room.")
}

func (c *console) listReservationsByGuest(ctx context.Context) {
	id := c.readInt("Guest ID: ")
	list, err := c.app.Bookings.ListByGuest(ctx, id, time.Now())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	printReservations(list, "No present/future reservations for that guest.")
}

func (c *console) cancelReservation(ctx context.Context) {
	id := c.readInt("Reservation ID to cancel: ")
	if err := c.app.Bookings.Cancel(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Reservation cancelled.")
}

func printRoom(rm *room.Room) {
	fmt.Printf("Room #%d: number=%d capacity=%d\n", rm.ID, rm.Number, rm.Capacity)
}

func printReservations(list []*booking.Reservation, emptyMsg string) {
	if len(list) == 0 {
		fmt.Println(emptyMsg)
		return
	}
	for _, r := range list {
		fmt.Printf("Reservation #%d: room=%d guest=%d guests=%d %s..%s [%s]\n",
			r.ID, r.RoomID, r.GuestID, r.NumGuests,
			r.StartDate.Format(dateLayout), r.EndDate.Format(dateLayout), r.Status)
	}
}

// readLine prompts until a non-empty line is entered.
func (c *console) readLine(prompt string) string {
	for {
		fmt.Print(prompt)
		if !c.in.Scan() {
			fmt.Println("\nGoodbye!")
			os.Exit(0)
		}
		if s := strings.TrimSpace(c.in.Text()); s != "" {
			return s
		}
	}
}

// readInt prompts until a valid integer is entered.
func (c *console) readInt(prompt string) int {
	for {
		raw := c.readLine(prompt)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Invalid number. Try again.")
			continue
		}
		return n
	}
}

// readDate prompts until a valid YYYY-MM-DD date is entered.
func (c *console) readDate(prompt string) time.Time {
	for {
		raw := c.readLine(prompt)
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			fmt.Println("Invalid date. Use format YYYY-MM-DD.")
			continue
		}
		return t
	}
}
