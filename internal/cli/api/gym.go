package api

import (
	"net/url"
	"strconv"
)

func (c *Client) Login(email, password string) (*AuthResult, error) {
	var resp Response[AuthResult]
	if err := c.Post("/auth/login", map[string]string{"email": email, "password": password}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Register(req RegisterRequest) (*AuthResult, error) {
	var resp Response[AuthResult]
	if err := c.Post("/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Me() (*User, error) {
	var resp Response[User]
	if err := c.Get("/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListUsers returns one page of users. role may be empty.
func (c *Client) ListUsers(role, search string, page, limit int) ([]User, *Pagination, error) {
	params := url.Values{}
	if role != "" {
		params.Set("role", role)
	}
	if search != "" {
		params.Set("search", search)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp Response[[]User]
	if err := c.Get("/users", params, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Data, resp.Pagination, nil
}

func (c *Client) GetUser(id string) (*User, error) {
	var resp Response[User]
	if err := c.Get("/users/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) GetUserByEmail(email string) (*User, error) {
	var resp Response[User]
	if err := c.Get("/users/email/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateUser(id string, upd UserUpdate) (*User, error) {
	var resp Response[User]
	if err := c.Patch("/users/"+url.PathEscape(id), upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteUser(id string) error {
	return c.Delete("/users/"+url.PathEscape(id), nil)
}

func (c *Client) ListWorkouts() ([]Workout, error) {
	var resp Response[[]Workout]
	if err := c.Get("/workouts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) MyWorkouts() ([]Workout, error) {
	var resp Response[[]Workout]
	if err := c.Get("/workouts/my-workout", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) UserWorkouts(userID string) ([]Workout, error) {
	var resp Response[[]Workout]
	if err := c.Get("/workouts/user/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetWorkout(id string) (*Workout, error) {
	var resp Response[Workout]
	if err := c.Get("/workouts/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) CreateWorkout(req WorkoutRequest) (*Workout, error) {
	var resp Response[Workout]
	if err := c.Post("/workouts", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateWorkout(id string, upd WorkoutUpdate) (*Workout, error) {
	var resp Response[Workout]
	if err := c.Patch("/workouts/"+url.PathEscape(id), upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ToggleWorkout flips completion. A non-zero version makes the server reject
// the toggle when the workout changed in the meantime.
func (c *Client) ToggleWorkout(id string, version int) (*Workout, error) {
	path := "/workouts/" + url.PathEscape(id) + "/toggle-completion"
	if version > 0 {
		path += "?version=" + strconv.Itoa(version)
	}
	var resp Response[Workout]
	if err := c.Patch(path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteWorkout(id string) error {
	return c.Delete("/workouts/"+url.PathEscape(id), nil)
}

func (c *Client) UploadWorkoutImage(id, filePath string) (*Workout, error) {
	var resp Response[Workout]
	if err := c.Upload("/workouts/"+url.PathEscape(id)+"/image", "image", filePath, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) WorkoutStats(userID string) (*WorkoutStats, error) {
	var resp Response[WorkoutStats]
	if err := c.Get("/workouts/stats/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) AllProgress() ([]MemberProgress, error) {
	var resp Response[[]MemberProgress]
	if err := c.Get("/workouts/users/all-progress", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) MemberProgress(userID string) (*MemberProgress, error) {
	var resp Response[MemberProgress]
	if err := c.Get("/workouts/users/"+url.PathEscape(userID)+"/progress", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) ListEvents() ([]Event, error) {
	var resp Response[[]Event]
	if err := c.Get("/events", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetEvent(id string) (*Event, error) {
	var resp Response[Event]
	if err := c.Get("/events/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) CreateEvent(req EventRequest) (*Event, error) {
	var resp Response[Event]
	if err := c.Post("/events", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateEvent(id string, upd EventUpdate) (*Event, error) {
	var resp Response[Event]
	if err := c.Patch("/events/"+url.PathEscape(id), upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteEvent(id string) error {
	return c.Delete("/events/"+url.PathEscape(id), nil)
}

func (c *Client) UploadEventImage(id, filePath string) (*Event, error) {
	var resp Response[Event]
	if err := c.Upload("/events/"+url.PathEscape(id)+"/image", "image", filePath, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) RecordSnapshot(traineeID string) (*Snapshot, error) {
	var resp Response[Snapshot]
	if err := c.Post("/progress", map[string]string{"traineeId": traineeID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) ListSnapshots() ([]Snapshot, error) {
	var resp Response[[]Snapshot]
	if err := c.Get("/progress", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) LatestSnapshot(traineeID string) (*Snapshot, error) {
	var resp Response[Snapshot]
	if err := c.Get("/progress/trainee/"+url.PathEscape(traineeID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) GetSnapshot(id string) (*Snapshot, error) {
	var resp Response[Snapshot]
	if err := c.Get("/progress/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
