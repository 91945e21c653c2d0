package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/yaboywf/bb-website-v3/internal/model"
)

type fakeUsers struct {
	users       map[string]*model.User
	denormCalls int
}

func (f *fakeUsers) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *user
	return &found, nil
}

func (f *fakeUsers) SetCurrentAppointment(ctx context.Context, id, appointmentName string) error {
	f.denormCalls++
	if user, ok := f.users[id]; ok {
		user.CurrentAppointment = appointmentName
	}
	return nil
}

type fakeAppointments struct {
	appointments []model.Appointment
	inserts      int
}

func (f *fakeAppointments) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	out := make([]model.Appointment, len(f.appointments))
	copy(out, f.appointments)
	return out, nil
}

func (f *fakeAppointments) GetAppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAppointments) InsertAppointment(ctx context.Context, name, accountType, accountID string) (*model.Appointment, error) {
	f.inserts++
	a := model.Appointment{
		ID:          fmt.Sprintf("apt-%d", len(f.appointments)+1),
		Name:        name,
		AccountType: accountType,
		AccountID:   accountID,
	}
	f.appointments = append(f.appointments, a)
	return &a, nil
}

func (f *fakeAppointments) SetAppointmentHolder(ctx context.Context, id, accountID string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].AccountID = accountID
		}
	}
	return nil
}

func (f *fakeAppointments) DeleteAppointment(ctx context.Context, id string) error {
	kept := f.appointments[:0]
	for _, a := range f.appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.appointments = kept
	return nil
}

func officerFixture() *fakeUsers {
	return &fakeUsers{users: map[string]*model.User{
		"officer-1": {ID: "officer-1", Name: "John Tan", Role: model.RoleOfficer},
		"boy-1":     {ID: "boy-1", Name: "Marcus Lim", Role: model.RoleBoy},
		"A1":        {ID: "A1", Name: "Daniel Ng", Role: model.RoleBoy},
	}}
}

func TestListEnrichesHolderName(t *testing.T) {
	users := officerFixture()
	appointments := &fakeAppointments{appointments: []model.Appointment{
		{ID: "apt-1", Name: "Captain", AccountType: "Officer", AccountID: "officer-1"},
		{ID: "apt-2", Name: "Duty Roster IC", AccountType: "Boy", AccountID: "ghost"},
		{ID: "apt-3", Name: "Band IC", AccountType: "Boy"},
	}}
	svc := NewAppointmentService(appointments, users)

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 items, got %d", len(views))
	}
	if views[0].AccountName != "John Tan" {
		t.Fatalf("expected enriched holder name, got %q", views[0].AccountName)
	}
	// Dangling holder reference degrades to an unenriched item.
	if views[1].AccountName != "" || views[1].AccountID != "ghost" {
		t.Fatalf("expected unenriched item for missing account, got %+v", views[1])
	}
	if views[2].AccountID != "" || views[2].AccountName != "" {
		t.Fatalf("expected empty enrichment for unheld slot, got %+v", views[2])
	}
}

func TestCreateSetsDenormalizedAppointment(t *testing.T) {
	users := officerFixture()
	appointments := &fakeAppointments{}
	svc := NewAppointmentService(appointments, users)

	req := model.CreateAppointmentRequest{AppointmentName: "Sec 1 PS", AccountType: "Boy", AccountID: "A1"}
	if err := svc.Create(context.Background(), "officer-1", req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if appointments.inserts != 1 {
		t.Fatalf("expected 1 insert, got %d", appointments.inserts)
	}
	if got := users.users["A1"].CurrentAppointment; got != "Sec 1 PS" {
		t.Fatalf("expected denormalized field %q, got %q", "Sec 1 PS", got)
	}
}

func TestCreateMissingFieldWritesNothing(t *testing.T) {
	reqs := []model.CreateAppointmentRequest{
		{AccountType: "Boy", AccountID: "A1"},
		{AppointmentName: "Band IC", AccountID: "A1"},
		{AppointmentName: "Band IC", AccountType: "Boy"},
	}
	for _, req := range reqs {
		users := officerFixture()
		appointments := &fakeAppointments{}
		svc := NewAppointmentService(appointments, users)

		if err := svc.Create(context.Background(), "officer-1", req); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
		if appointments.inserts != 0 || users.denormCalls != 0 {
			t.Fatalf("expected no writes for %+v", req)
		}
	}
}

func TestCreateRejectsNonOfficer(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointments{}, officerFixture())
	req := model.CreateAppointmentRequest{AppointmentName: "Band IC", AccountType: "Boy", AccountID: "A1"}
	if err := svc.Create(context.Background(), "boy-1", req); err != ErrRoleNotAllowed {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}

func TestCreateUnknownCaller(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointments{}, officerFixture())
	req := model.CreateAppointmentRequest{AppointmentName: "Band IC", AccountType: "Boy", AccountID: "A1"}
	if err := svc.Create(context.Background(), "nobody", req); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestReassignMovesHolder(t *testing.T) {
	users := officerFixture()
	appointments := &fakeAppointments{appointments: []model.Appointment{
		{ID: "apt-1", Name: "Band IC", AccountType: "Boy", AccountID: "boy-1"},
	}}
	svc := NewAppointmentService(appointments, users)

	req := model.UpdateAppointmentRequest{AppointmentID: "apt-1", AccountID: "A1"}
	if err := svc.Reassign(context.Background(), "officer-1", req); err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if appointments.appointments[0].AccountID != "A1" {
		t.Fatalf("expected holder A1, got %q", appointments.appointments[0].AccountID)
	}
}

// Reassign deliberately does not refresh current_appointment on either
// account; this pins the documented behavior.
func TestReassignLeavesDenormalizedNameStale(t *testing.T) {
	users := officerFixture()
	users.users["boy-1"].CurrentAppointment = "Band IC"
	appointments := &fakeAppointments{appointments: []model.Appointment{
		{ID: "apt-1", Name: "Band IC", AccountType: "Boy", AccountID: "boy-1"},
	}}
	svc := NewAppointmentService(appointments, users)

	req := model.UpdateAppointmentRequest{AppointmentID: "apt-1", AccountID: "A1"}
	if err := svc.Reassign(context.Background(), "officer-1", req); err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if users.denormCalls != 0 {
		t.Fatalf("expected no denormalization write, got %d", users.denormCalls)
	}
	if users.users["A1"].CurrentAppointment != "" || users.users["boy-1"].CurrentAppointment != "Band IC" {
		t.Fatal("expected denormalized fields untouched")
	}
}

func TestReassignUnknownAppointment(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointments{}, officerFixture())
	req := model.UpdateAppointmentRequest{AppointmentID: "apt-404", AccountID: "A1"}
	if err := svc.Reassign(context.Background(), "officer-1", req); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestDeleteProtectedAppointment(t *testing.T) {
	for _, name := range []string{"Captain", "CAPTAIN", "captain", "Sec 1 PS", "Dy CSM", "csm"} {
		appointments := &fakeAppointments{appointments: []model.Appointment{
			{ID: "apt-1", Name: name, AccountType: "Officer"},
		}}
		svc := NewAppointmentService(appointments, officerFixture())

		if err := svc.Delete(context.Background(), "officer-1", "apt-1"); err != ErrProtectedAppointment {
			t.Fatalf("expected ErrProtectedAppointment for %q, got %v", name, err)
		}
		if len(appointments.appointments) != 1 {
			t.Fatalf("expected %q to remain after refused delete", name)
		}
	}
}

func TestDeleteRemovesAppointment(t *testing.T) {
	appointments := &fakeAppointments{appointments: []model.Appointment{
		{ID: "apt-1", Name: "Band IC", AccountType: "Boy"},
	}}
	svc := NewAppointmentService(appointments, officerFixture())

	if err := svc.Delete(context.Background(), "officer-1", "apt-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(appointments.appointments) != 0 {
		t.Fatal("expected appointment removed")
	}
}

func TestDeleteMissingID(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointments{}, officerFixture())
	if err := svc.Delete(context.Background(), "officer-1", ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteUnknownAppointment(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointments{}, officerFixture())
	if err := svc.Delete(context.Background(), "officer-1", "apt-404"); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
