package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
)

func TestProgressService_AllMembersProgress(t *testing.T) {
	db := setupTestDB(t)
	service := NewProgressService(db, 10)
	t.Cleanup(service.Close)

	createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
	alice := createTestUser(t, db, "alice@gym.com", models.UserRoleMember)
	bob := createTestUser(t, db, "bob@gym.com", models.UserRoleMember)

	createTestWorkout(t, db, alice, "A", true)
	createTestWorkout(t, db, alice, "B", false)
	createTestWorkout(t, db, alice, "C", false)

	progress, err := service.AllMembersProgress(ctx)
	if err != nil {
		t.Fatalf("AllMembersProgress returned error: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 members (admin excluded), got %d", len(progress))
	}

	byID := map[uuid.UUID]MemberProgress{}
	for _, p := range progress {
		byID[p.UserID] = p
	}
	if p := byID[alice.ID]; p.TotalWorkouts != 3 || p.CompletedWorkouts != 1 || p.ProgressPercentage != 33 {
		t.Errorf("unexpected alice progress: %+v", p)
	}
	if p := byID[bob.ID]; p.TotalWorkouts != 0 || p.ProgressPercentage != 0 || p.Email != "bob@gym.com" {
		t.Errorf("unexpected bob progress: %+v", p)
	}
}

func TestProgressService_MemberProgress(t *testing.T) {
	db := setupTestDB(t)
	service := NewProgressService(db, 10)
	t.Cleanup(service.Close)

	admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	createTestWorkout(t, db, member, "A", true)
	createTestWorkout(t, db, member, "B", true)
	createTestWorkout(t, db, member, "C", false)

	progress, err := service.MemberProgress(ctx, member.ID)
	if err != nil {
		t.Fatalf("MemberProgress returned error: %v", err)
	}
	if progress.ProgressPercentage != 67 {
		t.Errorf("expected 67, got %d", progress.ProgressPercentage)
	}

	_, err = service.MemberProgress(ctx, admin.ID)
	assertKind(t, err, KindInvalidRole)

	_, err = service.MemberProgress(ctx, uuid.New())
	assertKind(t, err, KindNotFound)
}

func TestProgressService_Snapshots(t *testing.T) {
	db := setupTestDB(t)
	service := NewProgressService(db, 10)
	t.Cleanup(service.Close)

	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	createTestWorkout(t, db, member, "A", true)
	createTestWorkout(t, db, member, "B", false)

	_, err := service.LatestSnapshot(ctx, member.ID)
	assertKind(t, err, KindNotFound)

	first, err := service.RecordSnapshot(ctx, member.ID)
	if err != nil {
		t.Fatalf("RecordSnapshot returned error: %v", err)
	}
	if first.TotalWorkouts != 2 || first.CompletedWorkouts != 1 || first.ProgressPercentage != 50 {
		t.Errorf("unexpected snapshot: %+v", first)
	}

	db.Model(&models.Workout{}).Where("user_id = ?", member.ID).Update("is_completed", true)
	db.Model(first).Update("last_updated", first.LastUpdated-1000)

	second, err := service.RecordSnapshot(ctx, member.ID)
	if err != nil {
		t.Fatalf("RecordSnapshot returned error: %v", err)
	}

	latest, err := service.LatestSnapshot(ctx, member.ID)
	if err != nil {
		t.Fatalf("LatestSnapshot returned error: %v", err)
	}
	if latest.ID != second.ID || latest.ProgressPercentage != 100 {
		t.Errorf("expected latest snapshot at 100%%, got %+v", latest)
	}

	all, err := service.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots returned error: %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID {
		t.Errorf("expected newest snapshot first, got %v", all)
	}

	if err := service.DeleteSnapshot(ctx, first.ID); err != nil {
		t.Fatalf("DeleteSnapshot returned error: %v", err)
	}
	assertKind(t, service.DeleteSnapshot(ctx, first.ID), KindNotFound)
}

func TestProgressService_RecordAsync(t *testing.T) {
	db := setupTestDB(t)
	service := NewProgressService(db, 10)

	admin := createTestUser(t, db, "admin@gym.com", models.UserRoleAdmin)
	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	createTestWorkout(t, db, member, "A", true)

	service.RecordAsync(member.ID)
	service.RecordAsync(admin.ID)
	service.RecordAsync(uuid.New())
	service.Close()

	var count int64
	db.Model(&models.TraineeProgress{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 snapshot for the member only, got %d", count)
	}

	// after Close requests are ignored
	service.RecordAsync(member.ID)
	service.Close()
}

func TestProgressService_WorkoutToggleRecordsSnapshot(t *testing.T) {
	db := setupTestDB(t)
	progress := NewProgressService(db, 10)
	workouts := NewWorkoutService(db, progress)

	member := createTestUser(t, db, "member@gym.com", models.UserRoleMember)
	workout := createTestWorkout(t, db, member, "A", false)

	if _, err := workouts.ToggleCompletion(ctx, member, workout.ID, nil); err != nil {
		t.Fatalf("ToggleCompletion returned error: %v", err)
	}
	progress.Close()

	latest, err := progress.LatestSnapshot(ctx, member.ID)
	if err != nil {
		t.Fatalf("expected a snapshot after toggle: %v", err)
	}
	if latest.CompletedWorkouts != 1 || latest.ProgressPercentage != 100 {
		t.Errorf("unexpected snapshot after toggle: %+v", latest)
	}
}
