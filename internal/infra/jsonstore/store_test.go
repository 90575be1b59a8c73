package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aalvaropc/innkeep/internal/domain"
)

func sampleSnapshot() domain.Snapshot {
	snap := domain.EmptySnapshot()
	snap.Customers = append(snap.Customers, domain.NewCustomer(domain.CustomerFields{
		Name: "Ana", BirthDate: "1990-05-01", NationalID: "123.456.789-00",
		Email: "ana@hotel.com", Secret: "pw",
	}))
	snap.Staff = append(snap.Staff, domain.NewStaff(domain.StaffFields{
		Username: "bob", NationalID: "111.222", Email: "bob@hotel.com", Secret: "staffpw",
	}))
	snap.Rooms = append(snap.Rooms, domain.NewRoom(domain.RoomFields{
		Name: "Suite", Description: "sea view", BedCount: 2, PricePerNight: 350.5, AvailableQuantity: 3,
	}))
	snap.Reservations = append(snap.Reservations,
		domain.NewReservation(domain.ReservationFields{
			CustomerID: snap.Customers[0].ID, RoomName: "Suite",
			CheckIn: "2024-01-01", CheckOut: "2024-01-03",
		}),
		domain.NewReservation(domain.ReservationFields{
			CustomerID: snap.Customers[0].ID, RoomName: "Suite",
			Status:  domain.StatusCompleted,
			CheckIn: "2023-12-01", CheckOut: "2023-12-02",
			Rating:  &domain.Rating{Score: 5, Comment: "great"},
		}),
	)
	return snap
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := New(path)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\nwant=%+v\ngot=%+v", want, got)
	}
	if got.Customers[0].NationalID != "12345678900" {
		t.Fatalf("expected normalized national id, got %q", got.Customers[0].NationalID)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be gone, stat err=%v", err)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope.json"))
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if snap.Customers == nil || snap.Rooms == nil || len(snap.Reservations) != 0 || len(snap.Staff) != 0 {
		t.Fatalf("expected empty non-nil snapshot, got %+v", snap)
	}
}

func TestLoad_CorruptStore(t *testing.T) {
	cases := map[string]string{
		"truncated":  `{"customers": [`,
		"not json":   "hello",
		"empty":      "",
		"wrong type": `{"rooms": 5}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := New(path).Load(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !domain.IsKind(err, domain.KindStoreCorrupt) {
				t.Fatalf("expected KindStoreCorrupt, got %v", err)
			}
			if !errors.Is(err, domain.ErrStoreCorrupt) {
				t.Fatalf("expected ErrStoreCorrupt in chain, got %v", err)
			}
		})
	}
}

func TestLoad_ToleratesAbsentArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `{"rooms":[{"id":"qua_1","name":"Suite","bedCount":2,"pricePerNight":100,"availableQuantity":1}]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(snap.Rooms) != 1 || snap.Rooms[0].Name != "Suite" {
		t.Fatalf("unexpected rooms %+v", snap.Rooms)
	}
	if snap.Customers == nil || snap.Staff == nil || snap.Reservations == nil {
		t.Fatalf("expected absent arrays as empty, got %+v", snap)
	}
}

func TestLoad_ImportsLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := `{
  "clientes": [{"id":"cli_a","nome":"Ana","dataNascimento":"01/05/1990","cpf":"123.456.789-00","email":"ana@x.com","senha":"pw"}],
  "funcionarios": [{"id":"fun_b","username":"bob","cpf":"111-22","email":"bob@x.com","senha":"s"}],
  "quartos": [{"id":"qua_c","nome":"Suite","descricao":"vista","qtdCamas":"2","precoPorNoite":"199,90","qtdDisponivel":"3"}],
  "reservas": [
    {"id":"res_d","clienteId":"cli_a","quartoNome":"Suite","status":"cancelada","checkIn":"2024-01-01","checkOut":"2024-01-02","avaliacao":{"nota":"4","comentario":"bom"}},
    {"id":"res_e","clienteId":"cli_a","quartoNome":"Suite","status":"em espera","checkIn":"2024-02-01","checkOut":"2024-02-02","avaliacao":null}
  ]
}`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	c := snap.Customers[0]
	if c.ID != "cli_a" || c.Name != "Ana" || c.NationalID != "12345678900" || c.Secret != "pw" {
		t.Fatalf("unexpected customer %+v", c)
	}
	if snap.Staff[0].NationalID != "11122" {
		t.Fatalf("unexpected staff %+v", snap.Staff[0])
	}
	r := snap.Rooms[0]
	if r.BedCount != 2 || r.PricePerNight != 199.90 || r.AvailableQuantity != 3 {
		t.Fatalf("unexpected room numbers %+v", r)
	}

	res := snap.Reservations[0]
	if res.Status != domain.StatusCancelled {
		t.Fatalf("expected legacy status mapped, got %q", res.Status)
	}
	if res.Rating == nil || res.Rating.Score != 4 || res.Rating.Comment != "bom" {
		t.Fatalf("unexpected rating %+v", res.Rating)
	}
	if snap.Reservations[1].Status != "em espera" || snap.Reservations[1].Rating != nil {
		t.Fatalf("expected unknown status kept verbatim, got %+v", snap.Reservations[1])
	}
}

func TestSave_RewritesLegacyAsCurrentLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := `{"quartos":[{"id":"qua_c","nome":"Suite","qtdCamas":2}]}`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := New(path)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := store.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"customers", "staff", "rooms", "reservations"} {
		if _, ok := raw[k]; !ok {
			t.Fatalf("expected key %q in %s", k, b)
		}
	}
	if _, ok := raw["quartos"]; ok {
		t.Fatalf("expected legacy key dropped, got %s", b)
	}
}

func TestSave_WritesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := New(path, WithBackup(true))
	ctx := context.Background()

	first := domain.EmptySnapshot()
	first.Rooms = append(first.Rooms, domain.Room{ID: "qua_1", Name: "First"})
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save #1: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Fatalf("expected no backup before a previous file exists")
	}

	second := domain.EmptySnapshot()
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save #2: %v", err)
	}

	bak, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !strings.Contains(string(bak), "First") {
		t.Fatalf("expected previous content in backup, got %s", bak)
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")
	if err := New(path).Save(context.Background(), domain.EmptySnapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected store file, stat err=%v", err)
	}
}

func TestSave_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(path).Save(ctx, domain.EmptySnapshot()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written")
	}
}

func TestExport_MasksSecretsWithoutMutating(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	if err := Export(&buf, snap); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `"pw"`) || strings.Contains(out, "staffpw") {
		t.Fatalf("expected secrets masked, got:\n%s", out)
	}
	if strings.Count(out, maskValue) != 2 {
		t.Fatalf("expected 2 masked secrets, got:\n%s", out)
	}
	if snap.Customers[0].Secret != "pw" {
		t.Fatalf("expected input snapshot untouched")
	}
}

func TestLoad_LegacyNumbersRoundAndClamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := `{
  "quartos": [
    {"id":"qua_a","nome":"A","qtdCamas":"2.6","precoPorNoite":"Inf","qtdDisponivel":1e30},
    {"id":"qua_b","nome":"B","qtdCamas":-1e30,"precoPorNoite":"NaN","qtdDisponivel":"2,4"}
  ],
  "reservas": [
    {"id":"res_a","clienteId":"cli_a","quartoNome":"A","status":"pendente","avaliacao":{"nota":"4.5","comentario":""}}
  ]
}`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := New(path)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"rounded beds", snap.Rooms[0].BedCount, 3},
		{"clamped high", snap.Rooms[0].AvailableQuantity, math.MaxInt},
		{"clamped low", snap.Rooms[1].BedCount, math.MinInt},
		{"comma decimal", snap.Rooms[1].AvailableQuantity, 2},
		{"rounded score", snap.Reservations[0].Rating.Score, 5},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %d want %d", c.name, c.got, c.want)
		}
	}

	if snap.Rooms[0].PricePerNight != 0 || snap.Rooms[1].PricePerNight != 0 {
		t.Fatalf("non-finite prices should decode as 0, got %+v", snap.Rooms)
	}
	if err := store.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save after legacy import: %v", err)
	}
}
