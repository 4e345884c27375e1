package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roomgrid/roomgrid/booking"
	"github.com/roomgrid/roomgrid/booking/render"
)

// runMenu drives one session through the interactive console loop, reading
// choices line by line from in and writing every user-facing message to
// out. Returns when the user picks Exit or input ends; session metrics are
// printed on the way out.
//
// The menu numbering and message wording are stable console output; tests
// pin them verbatim.
func runMenu(s *booking.Session, in io.Reader, out io.Writer) {
	defer func() {
		fmt.Fprintln(out)
		s.Metrics().Print(out)
	}()

	scanner := bufio.NewScanner(in)
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}
	printFrame := func() {
		fmt.Fprint(out, render.Frame(s.Snapshot(), s.Topology(), s.LastBooked()))
	}

	for {
		fmt.Fprint(out, "\n--- HOTEL MENU ---\n")
		fmt.Fprintln(out, "1. Book Rooms")
		fmt.Fprintln(out, "2. Generate Random Occupancy")
		fmt.Fprintln(out, "3. Reset System")
		fmt.Fprintln(out, "4. Show Grid")
		fmt.Fprintln(out, "0. Exit")
		fmt.Fprint(out, "Enter choice: ")

		line, ok := readLine()
		if !ok {
			return
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid choice.")
			continue
		}

		switch choice {
		case 0:
			return
		case 1:
			fmt.Fprint(out, "Enter number of rooms (1-5): ")
			line, ok := readLine()
			if !ok {
				return
			}
			n, err := strconv.Atoi(line)
			if err != nil {
				// Unparseable counts get the same rejection as
				// out-of-range ones.
				n = 0
			}
			res := s.Book(n)
			printResult(out, res)
			if res.Succeeded() {
				printFrame()
			}
		case 2:
			s.Randomize(booking.DefaultOccupancyP)
			fmt.Fprintln(out, "Random occupancy generated.")
			printFrame()
		case 3:
			s.Reset()
			fmt.Fprintln(out, "System Reset. All rooms available.")
			printFrame()
		case 4:
			printFrame()
		default:
			fmt.Fprintln(out, "Invalid choice.")
		}
	}
}
