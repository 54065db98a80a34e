package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cubny/cabfare"
)

const banner = `
╔══════════════════════════════════════╗
║          Welcome to CabFare          ║
║     Your Ride, Your Choice, Your     ║
║            Destination!              ║
╚══════════════════════════════════════╝
`

func renderOptions(w io.Writer, options []cabfare.Option) {
	fmt.Fprintf(w, "\n🚗 Available Cab Options:\n%s\n", strings.Repeat("═", 40))
	for i, option := range options {
		fmt.Fprintf(w, "%d. %s\n", i+1, option)
	}
	fmt.Fprintln(w, strings.Repeat("═", 40))
}

func renderSummary(w io.Writer, req cabfare.BookingRequest) {
	fmt.Fprintf(w, "\n📋 Booking Summary for %s:\n", req.Passenger())
	fmt.Fprintln(w, strings.Repeat("═", 50))
	fmt.Fprintf(w, "📍 Destination: %s\n", req.Destination())
	fmt.Fprintf(w, "📏 Distance: %s km\n", formatDistance(req.Distance()))
	fmt.Fprintf(w, "🕐 Booking Time: %s\n", req.Time())
}

func renderSurcharges(w io.Writer, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, m := range messages {
		fmt.Fprintln(w, m)
	}
}

// renderTrip shows the chosen option with the full trip summary before confirmation
func renderTrip(w io.Writer, req cabfare.BookingRequest, option cabfare.Option, messages []string) {
	fmt.Fprintf(w, "\n🎯 You selected: %s\n", option)
	fmt.Fprintln(w, "📋 Trip Summary:")
	fmt.Fprintf(w, "   👤 Passenger: %s\n", req.Passenger())
	fmt.Fprintf(w, "   📍 To: %s\n", req.Destination())
	fmt.Fprintf(w, "   📏 Distance: %s km\n", formatDistance(req.Distance()))
	fmt.Fprintf(w, "   🕐 Time: %s\n", req.Time())

	if len(messages) == 0 {
		fmt.Fprintln(w, "   ✅ Standard pricing applied")
	}
	for _, m := range messages {
		fmt.Fprintf(w, "   %s\n", m)
	}

	fmt.Fprintf(w, "   💰 Total Fare: %s\n", option.Fare)
}

func renderInvalid(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ Error: %s\nPlease try again.\n\n", err)
}

func renderConfirmed(w io.Writer, ref uuid.UUID) {
	fmt.Fprintln(w, "\n🎉 Booking Confirmed!")
	fmt.Fprintf(w, "🔖 Booking reference: %s\n", ref)
	fmt.Fprintln(w, "🚗 Your cab will arrive shortly.")
	fmt.Fprintln(w, "📱 You will receive SMS updates about your ride.")
	fmt.Fprintln(w, "\n👋 Thank you for choosing CabFare!")
}

func renderCancelled(w io.Writer) {
	fmt.Fprintln(w, "\n❌ Booking cancelled.")
	fmt.Fprintln(w, "👋 Thank you for visiting CabFare!")
}

func renderFarewell(w io.Writer) {
	fmt.Fprintln(w, "\n\n👋 Goodbye! Thank you for using CabFare!")
}

func renderUnexpected(w io.Writer) {
	fmt.Fprintln(w, "\n❌ An unexpected error occurred, your booking could not be completed.")
	fmt.Fprintln(w, "👋 Thank you for using CabFare!")
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
