package api

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Age       *int      `json:"age"`
	Height    *float64  `json:"height"`
	Weight    *float64  `json:"weight"`
	BMI       *float64  `json:"bmi"`
	JoinDate  string    `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type Workout struct {
	ID          string    `json:"id"`
	EventTitle  string    `json:"eventTitle"`
	Sets        int       `json:"sets"`
	RepsOrSecs  int       `json:"repsOrSecs"`
	RestTime    int       `json:"restTime"`
	ImageURI    *string   `json:"imageUri,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	UserID      string    `json:"userId"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	ImageURI  *string   `json:"imageUri,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type WorkoutStats struct {
	TotalWorkouts     int64 `json:"totalWorkouts"`
	CompletedWorkouts int64 `json:"completedWorkouts"`
	CompletionRate    int   `json:"completionRate"`
}

type MemberProgress struct {
	UserID             string `json:"userId"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	TotalWorkouts      int64  `json:"totalWorkouts"`
	CompletedWorkouts  int64  `json:"completedWorkouts"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// Snapshot is a stored point-in-time copy of a member's progress.
type Snapshot struct {
	ID                 string `json:"id"`
	TraineeID          string `json:"traineeId"`
	TotalWorkouts      int    `json:"totalWorkouts"`
	CompletedWorkouts  int    `json:"completedWorkouts"`
	ProgressPercentage int    `json:"progressPercentage"`
	LastUpdated        int64  `json:"lastUpdated"`
}

type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	Age             *int     `json:"age,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
}

// UserUpdate sends only the fields that are set.
type UserUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Password *string  `json:"password,omitempty"`
	Role     *string  `json:"role,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type WorkoutRequest struct {
	EventTitle string `json:"eventTitle"`
	Sets       int    `json:"sets"`
	RepsOrSecs int    `json:"repsOrSecs"`
	RestTime   int    `json:"restTime"`
	UserID     string `json:"userId"`
}

type WorkoutUpdate struct {
	EventTitle  *string `json:"eventTitle,omitempty"`
	Sets        *int    `json:"sets,omitempty"`
	RepsOrSecs  *int    `json:"repsOrSecs,omitempty"`
	RestTime    *int    `json:"restTime,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
	UserID      *string `json:"userId,omitempty"`
	Version     *int    `json:"version,omitempty"`
}

type EventRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type EventUpdate struct {
	Title    *string `json:"title,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Location *string `json:"location,omitempty"`
}
