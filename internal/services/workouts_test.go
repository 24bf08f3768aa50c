package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
)

func TestWorkoutService_Create(t *testing.T) {
	db := setupTestDB(t)
	service := NewWorkoutService(db, nil)
	admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)

	input := WorkoutInput{EventTitle: " Squat ", Sets: 3, RepsOrSecs: 10, RestTime: 60}

	t.Run("assigns to member", func(t *testing.T) {
		workout, err := service.Create(ctx, admin, input, member.ID)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if workout.EventTitle != "Squat" || workout.UserID != member.ID {
			t.Errorf("unexpected workout: %+v", workout)
		}
		if workout.IsCompleted {
			t.Error("expected new workout to be incomplete")
		}
		if workout.Version != 1 {
			t.Errorf("expected version 1, got %d", workout.Version)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Create(ctx, admin, input, uuid.New())
		assertKind(t, err, KindNotFound)
	})

	t.Run("admin target", func(t *testing.T) {
		_, err := service.Create(ctx, admin, input, admin.ID)
		assertKind(t, err, KindInvalidRole)
	})
}

func TestWorkoutService_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewWorkoutService(db, nil)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	other := createTestUser(t, db, "other@gym.com", models.UserRoleMember)

	first := createTestWorkout(t, db, member, "First", false)
	second := createTestWorkout(t, db, member, "Second", false)
	createTestWorkout(t, db, other, "Other", false)
	db.Model(first).Update("created_at", time.Now().Add(-time.Hour))

	all, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(all))
	}
	if all[len(all)-1].ID != first.ID {
		t.Errorf("expected oldest workout last, got %s", all[len(all)-1].EventTitle)
	}

	mine, err := service.ListByUser(ctx, member.ID)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Errorf("expected newest first for member, got %v", mine)
	}
}

func TestWorkoutService_Update(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewWorkoutService(db, nil)
		admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
		member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
		workout := createTestWorkout(t, db, member, "Squat", false)

		updated, _, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{Sets: intPtr(5)})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if updated.Sets != 5 || updated.RepsOrSecs != 10 || updated.EventTitle != "Squat" {
			t.Errorf("unexpected workout after update: %+v", updated)
		}
		if updated.Version != 2 {
			t.Errorf("expected version 2, got %d", updated.Version)
		}
	})

	t.Run("reassigns owner", func(t *testing.T) {
		db := setupTestDB(t)
		snapshots := &recordingSnapshots{}
		service := NewWorkoutService(db, snapshots)
		admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
		member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
		other := createTestUser(t, db, "other@gym.com", models.UserRoleMember)
		workout := createTestWorkout(t, db, member, "Squat", false)

		updated, _, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{UserID: &other.ID})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if updated.UserID != other.ID {
			t.Errorf("expected owner %s, got %s", other.ID, updated.UserID)
		}
		if got := snapshots.recorded(); len(got) != 2 {
			t.Errorf("expected snapshots for both owners, got %v", got)
		}

		_, _, err = service.Update(ctx, admin, workout.ID, WorkoutUpdate{UserID: &admin.ID})
		assertKind(t, err, KindInvalidRole)
	})

	t.Run("rejects stale version and leaves row unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewWorkoutService(db, nil)
		admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
		member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
		workout := createTestWorkout(t, db, member, "Squat", false)

		_, _, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{Sets: intPtr(9), Version: intPtr(7)})
		assertKind(t, err, KindConflict)

		stored, _ := service.Get(ctx, workout.ID)
		if stored.Sets != 3 || stored.Version != 1 {
			t.Errorf("expected unchanged row, got sets=%d version=%d", stored.Sets, stored.Version)
		}

		if _, _, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{Sets: intPtr(9), Version: intPtr(1)}); err != nil {
			t.Fatalf("Update with current version returned error: %v", err)
		}
	})

	t.Run("unknown workout", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewWorkoutService(db, nil)
		admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)

		_, _, err := service.Update(ctx, admin, uuid.New(), WorkoutUpdate{Sets: intPtr(1)})
		assertKind(t, err, KindNotFound)
	})

	t.Run("image uri patch detaches uploaded object", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewWorkoutService(db, nil)
		admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
		member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
		workout := createTestWorkout(t, db, member, "Squat", false)
		if _, _, err := service.SetImage(ctx, workout.ID, "http://img/workouts/a.png", "workouts/a.png"); err != nil {
			t.Fatalf("SetImage returned error: %v", err)
		}

		_, detached, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{ImageURI: stringPtr("http://img/workouts/a.png")})
		if err != nil || detached != nil {
			t.Fatalf("expected unchanged uri to keep the object, got detached=%v err=%v", detached, err)
		}

		updated, detached, err := service.Update(ctx, admin, workout.ID, WorkoutUpdate{ImageURI: stringPtr("https://cdn.example.com/squat.png")})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if detached == nil || *detached != "workouts/a.png" {
			t.Fatalf("expected detached key workouts/a.png, got %v", detached)
		}
		if updated.ImageKey != nil || updated.ImageURI == nil || *updated.ImageURI != "https://cdn.example.com/squat.png" {
			t.Errorf("unexpected image fields: uri=%v key=%v", updated.ImageURI, updated.ImageKey)
		}

		removed, err := service.Remove(ctx, admin, workout.ID)
		if err != nil {
			t.Fatalf("Remove returned error: %v", err)
		}
		if removed.ImageKey != nil {
			t.Errorf("expected no stored object left to release, got %v", *removed.ImageKey)
		}
	})
}

func TestWorkoutService_ToggleCompletion(t *testing.T) {
	db := setupTestDB(t)
	snapshots := &recordingSnapshots{}
	service := NewWorkoutService(db, snapshots)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	workout := createTestWorkout(t, db, member, "Squat", false)

	t.Run("toggling twice restores the original state", func(t *testing.T) {
		once, err := service.ToggleCompletion(ctx, member, workout.ID, nil)
		if err != nil {
			t.Fatalf("ToggleCompletion returned error: %v", err)
		}
		if !once.IsCompleted {
			t.Error("expected completed after first toggle")
		}

		twice, err := service.ToggleCompletion(ctx, member, workout.ID, nil)
		if err != nil {
			t.Fatalf("ToggleCompletion returned error: %v", err)
		}
		if twice.IsCompleted != workout.IsCompleted {
			t.Error("expected original state after second toggle")
		}
		if twice.Version != workout.Version+2 {
			t.Errorf("expected version %d, got %d", workout.Version+2, twice.Version)
		}
		if got := snapshots.recorded(); len(got) != 2 || got[0] != member.ID {
			t.Errorf("expected a snapshot per toggle, got %v", got)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		current, _ := service.Get(ctx, workout.ID)
		stale := current.Version - 1

		_, err := service.ToggleCompletion(ctx, member, workout.ID, &stale)
		assertKind(t, err, KindConflict)

		after, _ := service.Get(ctx, workout.ID)
		if after.IsCompleted != current.IsCompleted || after.Version != current.Version {
			t.Error("expected row unchanged after stale toggle")
		}

		if _, err := service.ToggleCompletion(ctx, member, workout.ID, &current.Version); err != nil {
			t.Fatalf("ToggleCompletion with current version returned error: %v", err)
		}
	})

	t.Run("unknown workout", func(t *testing.T) {
		_, err := service.ToggleCompletion(ctx, member, uuid.New(), nil)
		assertKind(t, err, KindNotFound)
	})
}

func TestWorkoutService_Remove(t *testing.T) {
	db := setupTestDB(t)
	service := NewWorkoutService(db, nil)
	admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	workout := createTestWorkout(t, db, member, "Squat", false)

	removed, err := service.Remove(ctx, admin, workout.ID)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if removed.ID != workout.ID {
		t.Errorf("expected removed workout %s, got %s", workout.ID, removed.ID)
	}

	_, err = service.Get(ctx, workout.ID)
	assertKind(t, err, KindNotFound)

	_, err = service.Remove(ctx, admin, workout.ID)
	assertKind(t, err, KindNotFound)
}

func TestWorkoutService_Stats(t *testing.T) {
	db := setupTestDB(t)
	service := NewWorkoutService(db, nil)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)

	stats, err := service.Stats(ctx, member.ID)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalWorkouts != 0 || stats.CompletionRate != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	createTestWorkout(t, db, member, "A", true)
	createTestWorkout(t, db, member, "B", true)
	createTestWorkout(t, db, member, "C", false)

	stats, err = service.Stats(ctx, member.ID)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalWorkouts != 3 || stats.CompletedWorkouts != 2 || stats.CompletionRate != 67 {
		t.Errorf("expected 2/3 at 67%%, got %+v", stats)
	}

	_, err = service.Stats(ctx, uuid.New())
	assertKind(t, err, KindNotFound)
}

func TestWorkoutService_SetImage(t *testing.T) {
	db := setupTestDB(t)
	service := NewWorkoutService(db, nil)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	workout := createTestWorkout(t, db, member, "Squat", false)

	updated, previous, err := service.SetImage(ctx, workout.ID, "http://img/1", "workouts/1")
	if err != nil {
		t.Fatalf("SetImage returned error: %v", err)
	}
	if previous != nil {
		t.Errorf("expected no previous key, got %s", *previous)
	}
	if updated.ImageURI == nil || *updated.ImageURI != "http://img/1" {
		t.Errorf("unexpected image uri: %v", updated.ImageURI)
	}

	_, previous, err = service.SetImage(ctx, workout.ID, "http://img/2", "workouts/2")
	if err != nil {
		t.Fatalf("SetImage returned error: %v", err)
	}
	if previous == nil || *previous != "workouts/1" {
		t.Errorf("expected previous key workouts/1, got %v", previous)
	}
}
