package services

import (
	"net/http"
	"sync"
	"testing"

	"github.com/neighborly/helpdesk/internal/models"
)

func TestAccept_HappyPath(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	assignment, err := service.Accept(request.ID, volunteer.ID)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	if assignment.Status != models.AssignmentStatusAccepted {
		t.Errorf("assignment Status = %q, expected %q", assignment.Status, models.AssignmentStatusAccepted)
	}
	if assignment.VolunteerID != volunteer.ID {
		t.Errorf("VolunteerID = %d, expected %d", assignment.VolunteerID, volunteer.ID)
	}

	var updated models.Request
	if err := db.First(&updated, request.ID).Error; err != nil {
		t.Fatalf("reload request failed: %v", err)
	}
	if updated.Status != models.RequestStatusAccepted {
		t.Errorf("request Status = %q, expected %q", updated.Status, models.RequestStatusAccepted)
	}
}

func TestAccept_UnknownRequest(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)

	_, err := service.Accept(999, volunteer.ID)
	assertStatus(t, err, http.StatusNotFound)
}

func TestAccept_UnknownVolunteer(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	_, err := service.Accept(request.ID, 999)
	assertStatus(t, err, http.StatusNotFound)
}

func TestAccept_OwnRequest(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	_, err := service.Accept(request.ID, resident.ID)
	assertStatus(t, err, http.StatusConflict)
}

func TestAccept_NotOpen(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)

	cancelled := createTestRequest(t, db, resident.ID, "Cancelled request here", models.RequestStatusCancelled)
	completed := createTestRequest(t, db, resident.ID, "Completed request here", models.RequestStatusCompleted)

	_, err := service.Accept(cancelled.ID, volunteer.ID)
	assertStatus(t, err, http.StatusConflict)

	_, err = service.Accept(completed.ID, volunteer.ID)
	assertStatus(t, err, http.StatusConflict)
}

func TestAccept_AlreadyAccepted(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	first := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)
	second := createTestUser(t, db, "Carol Davis", "carol@example.com", models.RoleVolunteer)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	if _, err := service.Accept(request.ID, first.ID); err != nil {
		t.Fatalf("first Accept failed: %v", err)
	}

	_, err := service.Accept(request.ID, second.ID)
	assertStatus(t, err, http.StatusConflict)
}

func TestAccept_ConcurrentClaims(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	const volunteers = 4
	ids := make([]uint, volunteers)
	for i := range ids {
		v := createTestUser(t, db, "Volunteer", string(rune('a'+i))+"@example.com", models.RoleVolunteer)
		ids[i] = v.ID
	}

	var wg sync.WaitGroup
	results := make([]error, volunteers)
	for i := 0; i < volunteers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.Accept(request.ID, ids[i])
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		}
	}
	if successes != 1 {
		t.Errorf("successful claims = %d, expected exactly 1", successes)
	}

	var accepted int64
	if err := db.Model(&models.Assignment{}).
		Where("request_id = ? AND status = ?", request.ID, models.AssignmentStatusAccepted).
		Count(&accepted).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if accepted != 1 {
		t.Errorf("accepted assignments = %d, expected exactly 1", accepted)
	}
}

func TestComplete_HappyPath(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	if _, err := service.Accept(request.ID, volunteer.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	completed, err := service.Complete(request.ID, volunteer.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.Status != models.RequestStatusCompleted {
		t.Errorf("request Status = %q, expected %q", completed.Status, models.RequestStatusCompleted)
	}

	assignment, err := service.FindByRequestAndVolunteer(request.ID, volunteer.ID)
	if err != nil {
		t.Fatalf("FindByRequestAndVolunteer failed: %v", err)
	}
	if assignment.Status != models.AssignmentStatusCompleted {
		t.Errorf("assignment Status = %q, expected %q", assignment.Status, models.AssignmentStatusCompleted)
	}
	if assignment.CompletedAt == nil {
		t.Error("CompletedAt should be set")
	}
}

func TestComplete_NotAssigned(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)
	bystander := createTestUser(t, db, "Carol Davis", "carol@example.com", models.RoleVolunteer)
	request := createTestRequest(t, db, resident.ID, "Need help carrying groceries", models.RequestStatusOpen)

	if _, err := service.Accept(request.ID, volunteer.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	_, err := service.Complete(request.ID, bystander.ID)
	assertStatus(t, err, http.StatusConflict)
}

func TestComplete_UnknownRequest(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)

	_, err := service.Complete(999, volunteer.ID)
	assertStatus(t, err, http.StatusNotFound)
}

func TestListByVolunteer(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)
	resident := createTestUser(t, db, "Alice Johnson", "alice@example.com", models.RoleResident)
	volunteer := createTestUser(t, db, "Bob Smith", "bob@example.com", models.RoleVolunteer)

	first := createTestRequest(t, db, resident.ID, "First request to claim", models.RequestStatusOpen)
	second := createTestRequest(t, db, resident.ID, "Second request to claim", models.RequestStatusOpen)

	if _, err := service.Accept(first.ID, volunteer.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if _, err := service.Accept(second.ID, volunteer.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	assignments, err := service.ListByVolunteer(volunteer.ID)
	if err != nil {
		t.Fatalf("ListByVolunteer failed: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("len = %d, expected 2", len(assignments))
	}
	if assignments[0].Request.ID == 0 {
		t.Error("Request should be preloaded")
	}
}
