package views

import (
	"bufio"
	"context"
	"fmt"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const consoleHelp = `Type to search rooms. Commands:
  :search TEXT        apply a search now
  :type A,B           filter by room types (empty clears)
  :price MIN MAX      nightly price bounds, "-" leaves a side open
  :sort KEY [DIR]     sort by price or type, asc or desc
  :page N | :next | :prev
  :reset              clear every filter
  :refresh            reload rooms from the backend
  :quit`

// Fetcher loads a fresh room snapshot.
type Fetcher func(ctx context.Context) ([]model.Room, error)

// Console drives a room Controller from line based input. Plain lines are
// keystrokes of the search box and go through the debounced path.
type Console struct {
	rooms   *Controller[model.Room]
	fetch   Fetcher
	mu      sync.Mutex
	out     io.Writer
	heading *color.Color
	faint   *color.Color
	warn    *color.Color
}

func NewConsole(rooms *Controller[model.Room], fetch Fetcher, out io.Writer) *Console {
	return &Console{
		rooms:   rooms,
		fetch:   fetch,
		out:     out,
		heading: color.New(color.Bold, color.FgCyan),
		faint:   color.New(color.Faint),
		warn:    color.New(color.FgRed),
	}
}

// Run reads lines until EOF or :quit. A pending search is applied before Run returns.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.Render(c.rooms.State(), c.rooms.Result())

	lines := bufio.NewScanner(in)

	for lines.Scan() {
		if quit := c.Handle(ctx, lines.Text()); quit {
			break
		}
	}

	c.rooms.FlushSearch()

	return lines.Err()
}

// Handle processes one input line and reports whether the user asked to quit.
func (c *Console) Handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, ":") {
		if strings.TrimSpace(line) == "" {
			c.rooms.FlushSearch()

			return false
		}

		c.rooms.TypeSearch(line, c.Render)

		return false
	}

	c.rooms.FlushSearch()

	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false
	}

	args := fields[1:]

	var (
		state State
		res   search.Result[model.Room]
		err   error
	)

	switch fields[0] {
	case "quit", "q":
		return true
	case "help":
		c.print(consoleHelp + "\n")

		return false
	case "search":
		state, res, err = c.rooms.SetSearch(strings.Join(args, " "))
	case "type":
		state, res, err = c.rooms.SetRoomTypes(shared.SplitList(strings.Join(args, " "))...)
	case "price":
		state, res, err = c.price(args)
	case "sort":
		state, res, err = c.sort(args)
	case "page":
		state, res, err = c.page(args)
	case "next":
		state, res, err = c.rooms.GoToPage(c.rooms.State().Page() + 1)
	case "prev":
		state, res, err = c.rooms.GoToPage(c.rooms.State().Page() - 1)
	case "reset":
		state, res = c.rooms.Reset()
	case "refresh":
		state, res, err = c.refresh(ctx)
	default:
		err = fmt.Errorf("unknown command %q, try :help", fields[0])
	}

	if err != nil {
		c.printError(err)

		return false
	}

	c.Render(state, res)

	return false
}

func (c *Console) price(args []string) (State, search.Result[model.Room], error) {
	bound := func(i int) decimal.NullDecimal {
		if i >= len(args) {
			return decimal.NullDecimal{}
		}

		return search.PriceBound(args[i])
	}

	return c.rooms.SetPriceRange(bound(0), bound(1))
}

func (c *Console) sort(args []string) (State, search.Result[model.Room], error) {
	if len(args) == 0 {
		return c.rooms.SetSort(search.SortDefault, "")
	}

	dir := search.Asc
	if len(args) > 1 {
		dir = search.Direction(strings.ToLower(args[1]))
	}

	return c.rooms.SetSort(search.SortKey(args[0]), dir)
}

func (c *Console) page(args []string) (State, search.Result[model.Room], error) {
	if len(args) == 0 {
		return c.rooms.GoToPage(1)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return State{}, search.Result[model.Room]{}, fmt.Errorf("invalid page %q", args[0])
	}

	return c.rooms.GoToPage(n)
}

func (c *Console) refresh(ctx context.Context) (State, search.Result[model.Room], error) {
	rooms, err := c.fetch(ctx)
	if err != nil {
		return State{}, search.Result[model.Room]{}, fmt.Errorf("failed to reload rooms: %w", err)
	}

	state, res := c.rooms.Replace(rooms)

	return state, res, nil
}

// Render prints one page of rooms. It is also the callback of debounced searches,
// so writes are serialized.
func (c *Console) Render(state State, res search.Result[model.Room]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	criteria := state.Criteria
	page := res.Page

	c.heading.Fprintf(c.out, "Rooms %d of %d (page %d/%d)\n", len(page.Items), page.TotalItems, page.Number, max(page.TotalPages, 1))

	if criteria.Search != "" || len(criteria.RoomTypes) > 0 {
		c.faint.Fprintf(c.out, "search=%q types=%s\n", criteria.Search, strings.Join(criteria.RoomTypes, ","))
	}

	if res.Empty {
		c.faint.Fprintln(c.out, "No rooms match your filters.")

		return
	}

	table := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tTYPE\tPRICE\tDESCRIPTION")

	for _, room := range page.Items {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\n", room.ID, room.RoomType, room.RoomPrice.Display(), room.RoomDescription)
	}

	table.Flush()
}

func (c *Console) print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprint(c.out, text)
}

func (c *Console) printError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.warn.Fprintln(c.out, err.Error())
}
