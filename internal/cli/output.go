package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mwhitfield/clubstore/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Team:
		o.printTeam(v)
	case []model.Team:
		for _, team := range v {
			o.printTeam(team)
		}
	case model.Player:
		o.printPlayer(v)
	case []model.Player:
		for _, player := range v {
			o.printPlayer(player)
		}
	case model.Event:
		o.printEvent(v)
	case []model.Event:
		for _, event := range v {
			o.printEvent(event)
		}
	case model.Announcement:
		o.printAnnouncement(v)
	case []model.Announcement:
		for _, announcement := range v {
			o.printAnnouncement(announcement)
		}
	case model.User:
		o.printUser(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printTeam(t model.Team) {
	fmt.Printf("%s  %s (%s Division, %s)\n", t.ID, t.Name, t.Division, t.Category)
}

func (o *Output) printPlayer(p model.Player) {
	fmt.Printf("%s  %s  %s  dob=%s  team=%s\n", p.ID, p.FullName(), p.Position, p.DateOfBirth, p.TeamID)
}

func (o *Output) printEvent(e model.Event) {
	fmt.Printf("%s  %s (%s) at %s on %s, register by %s\n",
		e.ID, e.Title, e.Category, e.Location,
		e.Date.Format(time.RFC3339), e.RegistrationDeadline.Format(time.RFC3339))
}

func (o *Output) printAnnouncement(a model.Announcement) {
	marker := " "
	if a.Important {
		marker = "!"
	}
	fmt.Printf("%s %s  %s  %s\n", marker, a.Date.Format("2006-01-02"), a.Title, a.Message)
}

func (o *Output) printUser(u model.User) {
	fmt.Printf("%s  %s <%s>\n", u.ID, u.Username, u.Email)
}
