// Command guest drives the booking and payment workflows against a running
// reservation service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"room-booking/internal/booking"
	"room-booking/internal/client"
	"room-booking/internal/workflow"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: guest [rooms|reservations|book|pay] [flags]")
		os.Exit(1)
	}

	addr := os.Getenv("BOOKING_API_URL")
	if addr == "" {
		addr = "http://localhost:8080"
	}

	logger := zap.NewNop()
	if os.Getenv("BOOKING_DEBUG") != "" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	c := client.New(addr, logger)

	cmd := os.Args[1]
	switch cmd {
	case "rooms":
		roomsCmd(c)
	case "reservations":
		reservationsCmd(c, os.Args[2:])
	case "book":
		bookCmd(c, logger, os.Args[2:])
	case "pay":
		payCmd(c, logger, os.Args[2:])
	default:
		fmt.Println("unknown command:", cmd)
		os.Exit(1)
	}
}

func roomsCmd(c *client.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rooms, err := c.ListRooms(ctx)
	if err != nil {
		log.Fatalf("list rooms error: %v", err)
	}

	for _, room := range rooms {
		fmt.Printf("%s  %s  $%.2f/night\n", room.ID, room.Name, room.PricePerNight)
	}
}

func reservationsCmd(c *client.Client, args []string) {
	fs := flag.NewFlagSet("reservations", flag.ExitOnError)
	room := fs.String("room", "", "room id (optional; all rooms when empty)")
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		reservations []client.Reservation
		err          error
	)
	if *room == "" {
		reservations, err = c.ListReservations(ctx)
	} else {
		reservations, err = c.ListRoomReservations(ctx, *room)
	}
	if err != nil {
		log.Fatalf("list reservations error: %v", err)
	}

	for _, r := range reservations {
		fmt.Printf("%s  room=%s  %s to %s  %s  %s\n",
			r.ID, r.RoomID, r.StartDate, r.EndDate, r.Status, r.GuestEmail)
	}
}

func bookCmd(c *client.Client, logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	room := fs.String("room", "", "room id")
	email := fs.String("email", "", "guest email")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *room == "" || *email == "" || *start == "" || *end == "" {
		log.Fatal("room, email, start and end are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w := workflow.NewBookingWorkflow(c, *room, logger)
	if err := w.Refresh(ctx); err != nil {
		log.Fatalf("load reservations error: %v", err)
	}

	if active := w.Active(); len(active) > 0 {
		fmt.Println("Active reservations:")
		for _, r := range active {
			fmt.Printf("  %s to %s\n", r.Start.Format(booking.DateLayout), r.End.Format(booking.DateLayout))
		}
	}

	in := workflow.BookingInput{GuestEmail: *email, StartDate: *start, EndDate: *end}
	if !w.CanSubmit(in) {
		log.Fatal("cannot submit: check the dates, the email, and the active reservations above")
	}

	created, err := w.Submit(ctx, in)
	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			log.Fatalf("reservation rejected: %s", rejected.Detail)
		}
		log.Fatalf("create reservation error: %v", err)
	}

	fmt.Printf("Reservation created. ID: %s | %s to %s | Status: %s\n",
		created.ID, created.StartDate, created.EndDate, created.Status)
}

func payCmd(c *client.Client, logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	room := fs.String("room", "", "room id")
	reservation := fs.String("reservation", "", "reservation id")
	_ = fs.Parse(args)

	if *room == "" || *reservation == "" {
		log.Fatal("room and reservation are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w := workflow.NewPaymentWorkflow(c, *room, *reservation, logger)
	if err := w.Load(ctx); err != nil {
		if errors.Is(err, workflow.ErrReservationNotFound) {
			log.Fatal("reservation not found for this room")
		}
		log.Fatalf("load payment details error: %v", err)
	}

	nights, total, err := w.Quote()
	if err != nil {
		log.Fatalf("quote error: %v", err)
	}

	r := w.Room()
	fmt.Printf("Room: %s | $%.2f/night | Nights: %d | Total: $%.2f\n",
		r.Name, r.PricePerNight, nights, total)

	if p := w.Payability(); !p.Payable {
		log.Fatalf("payment disabled: %s", p.Reason)
	}

	payment, err := w.Pay(ctx)
	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			log.Fatalf("payment rejected: %s", rejected.Detail)
		}
		log.Fatalf("payment error: %v", err)
	}

	fmt.Printf("Payment completed. ID: %s | Amount: $%.2f\n", payment.ID, payment.Amount)
}
