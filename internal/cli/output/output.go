package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/gymmanagement/gym/internal/cli/api"
)

// Out is where every printer writes.
var Out io.Writer = os.Stdout

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
}

// JSON prints v as indented JSON.
func JSON(v interface{}) {
	enc := json.NewEncoder(Out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func UserInfo(u api.User) {
	w := newTable()
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	fmt.Fprintf(w, "Age:\t%s\n", FormatInt(u.Age))
	fmt.Fprintf(w, "Height:\t%s\n", FormatFloat(u.Height, " cm"))
	fmt.Fprintf(w, "Weight:\t%s\n", FormatFloat(u.Weight, " kg"))
	fmt.Fprintf(w, "BMI:\t%s\n", FormatFloat(u.BMI, ""))
	if u.JoinDate != "" {
		fmt.Fprintf(w, "Joined:\t%s\n", u.JoinDate)
	}
	w.Flush()
}

func UserTable(users []api.User) {
	if len(users) == 0 {
		fmt.Fprintln(Out, "No users found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tBMI")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, FormatFloat(u.BMI, ""))
	}
	w.Flush()
}

func WorkoutTable(workouts []api.Workout) {
	if len(workouts) == 0 {
		fmt.Fprintln(Out, "No workouts found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tEXERCISE\tSETS\tREPS/SECS\tREST\tDONE\tCREATED")
	for _, wk := range workouts {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%ds\t%s\t%s\n",
			wk.ID, wk.EventTitle, wk.Sets, wk.RepsOrSecs, wk.RestTime, checkmark(wk.IsCompleted), RelativeTime(wk.CreatedAt))
	}
	w.Flush()
}

func WorkoutDetail(wk api.Workout) {
	w := newTable()
	fmt.Fprintf(w, "Exercise:\t%s\n", wk.EventTitle)
	fmt.Fprintf(w, "ID:\t%s\n", wk.ID)
	fmt.Fprintf(w, "Member:\t%s\n", wk.UserID)
	fmt.Fprintf(w, "Sets:\t%d\n", wk.Sets)
	fmt.Fprintf(w, "Reps/Secs:\t%d\n", wk.RepsOrSecs)
	fmt.Fprintf(w, "Rest:\t%ds\n", wk.RestTime)
	fmt.Fprintf(w, "Completed:\t%v\n", wk.IsCompleted)
	fmt.Fprintf(w, "Version:\t%d\n", wk.Version)
	if wk.ImageURI != nil {
		fmt.Fprintf(w, "Image:\t%s\n", *wk.ImageURI)
	}
	fmt.Fprintf(w, "Created:\t%s\n", wk.CreatedAt.Format(time.RFC3339))
	w.Flush()
}

func EventTable(events []api.Event) {
	if len(events) == 0 {
		fmt.Fprintln(Out, "No events found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tTIME\tLOCATION")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Date, e.Time, e.Location)
	}
	w.Flush()
}

func EventDetail(e api.Event) {
	w := newTable()
	fmt.Fprintf(w, "Title:\t%s\n", e.Title)
	fmt.Fprintf(w, "ID:\t%s\n", e.ID)
	fmt.Fprintf(w, "When:\t%s %s\n", e.Date, e.Time)
	fmt.Fprintf(w, "Location:\t%s\n", e.Location)
	fmt.Fprintf(w, "Created By:\t%s\n", e.CreatedBy)
	if e.ImageURI != nil {
		fmt.Fprintf(w, "Image:\t%s\n", *e.ImageURI)
	}
	w.Flush()
}

func Stats(s api.WorkoutStats) {
	w := newTable()
	fmt.Fprintf(w, "Total:\t%d\n", s.TotalWorkouts)
	fmt.Fprintf(w, "Completed:\t%d\n", s.CompletedWorkouts)
	fmt.Fprintf(w, "Completion:\t%d%%\n", s.CompletionRate)
	w.Flush()
}

func ProgressTable(progress []api.MemberProgress) {
	if len(progress) == 0 {
		fmt.Fprintln(Out, "No members found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "MEMBER\tEMAIL\tDONE\tTOTAL\tPROGRESS")
	for _, p := range progress {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.Name, p.Email, p.CompletedWorkouts, p.TotalWorkouts, ProgressBar(p.ProgressPercentage))
	}
	w.Flush()
}

func SnapshotTable(snapshots []api.Snapshot) {
	if len(snapshots) == 0 {
		fmt.Fprintln(Out, "No progress snapshots found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tTRAINEE\tDONE\tTOTAL\tPROGRESS\tTAKEN")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d%%\t%s\n",
			s.ID, s.TraineeID, s.CompletedWorkouts, s.TotalWorkouts, s.ProgressPercentage, RelativeTime(time.UnixMilli(s.LastUpdated)))
	}
	w.Flush()
}

// ProgressBar renders a percentage as a ten-cell bar followed by the number.
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	bar := make([]byte, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return fmt.Sprintf("[%s] %3d%%", bar, percent)
}

func FormatFloat(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + unit
}

func FormatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago", "3d ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func checkmark(done bool) string {
	if done {
		return "yes"
	}
	return "no"
}
