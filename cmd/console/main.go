// Command console is the interactive front-end: a menu-driven loop for
// searching rooms, reserving one with a simulated payment step and
// listing a guest's reservations.  It drives the same in-memory core as
// the HTTP server but needs no Redis, broker or configuration, so it is
// the quickest way to exercise the system end to end.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-room-reservation/internal/booking"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/payment"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

const dateLayout = "2006-01-02"

func main() {
	_ = godotenv.Load()

	rooms := store.NewRoomStore(store.DefaultRooms())
	ledger := store.NewReservationStore()
	svc := booking.New(rooms, ledger)
	gateway := payment.New()

	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("Welcome to the Hotel")
		fmt.Println("1. Search for rooms")
		fmt.Println("2. Make a reservation")
		fmt.Println("3. View your reservations")
		fmt.Println("4. Exit")

		switch readLine(in, "> ") {
		case "1":
			searchRooms(in, rooms)
		case "2":
			makeReservation(in, svc, gateway)
		case "3":
			viewReservations(in, svc)
		case "4":
			fmt.Println("Thank you for using the Hotel!")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func searchRooms(in *bufio.Scanner, rooms *store.RoomStore) {
	category := readLine(in, "Enter room type (Single, Double, Suite): ")
	found := rooms.Search(category)
	if len(found) == 0 {
		fmt.Println("No available rooms found for the given type.")
		return
	}
	fmt.Println("Available rooms:")
	for _, r := range found {
		printRoom(r)
	}
}

func makeReservation(in *bufio.Scanner, svc *booking.Service, gateway *payment.Gateway) {
	roomID, ok := readRoomID(in)
	if !ok {
		return
	}
	guest := readLine(in, "Enter your name: ")
	checkIn := readDate(in, "Enter check-in date (YYYY-MM-DD): ")
	checkOut := readDate(in, "Enter check-out date (YYYY-MM-DD): ")

	res, err := svc.Book(roomID, guest, checkIn, checkOut)
	if err != nil {
		fmt.Println("Failed to make reservation. Room may not be available.")
		return
	}

	details := readLine(in, "Enter payment details: ")
	receipt, err := gateway.Charge(context.Background(), details, int64(res.TotalCents))
	if err != nil || !receipt.Approved {
		fmt.Println("Payment failed. Reservation not completed.")
		return
	}
	fmt.Printf("Reservation successful! Total Price: $%.2f (ref %s)\n", res.Total(), receipt.Reference)
}

func viewReservations(in *bufio.Scanner, svc *booking.Service) {
	name := readLine(in, "Enter your name: ")
	items := svc.FindByGuest(name)
	if len(items) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	fmt.Println("Your reservations:")
	for _, r := range items {
		printReservation(r)
	}
}

// readRoomID keeps prompting until a positive integer is entered or the
// guest gives up with an empty line.
func readRoomID(in *bufio.Scanner) (uint64, bool) {
	for {
		s := readLine(in, "Enter room ID: ")
		if s == "" {
			return 0, false
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err == nil && id > 0 {
			return id, true
		}
		fmt.Println("Invalid room ID, try again.")
	}
}

// readDate keeps prompting until the input parses as YYYY-MM-DD.  A bad
// date is a retry, never a crash.
func readDate(in *bufio.Scanner, prompt string) time.Time {
	for {
		s := readLine(in, prompt)
		t, err := time.Parse(dateLayout, s)
		if err == nil {
			return t
		}
		fmt.Println("Invalid date, expected YYYY-MM-DD. Try again.")
	}
}

func readLine(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		// stdin closed; behave like choosing Exit.
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func printRoom(r model.Room) {
	fmt.Printf("  Room %d | %s | $%.2f/night | available=%t\n", r.ID, r.Category, r.Rate(), r.Available)
}

func printReservation(r model.Reservation) {
	fmt.Printf("  Reservation %d | room %d | %s -> %s | $%.2f\n",
		r.ID, r.RoomID, r.CheckIn.Format(dateLayout), r.CheckOut.Format(dateLayout), r.Total())
}
