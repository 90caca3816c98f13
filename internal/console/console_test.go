package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"
	"quehaypahacer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestConsole wires the console to real services over an in-memory
// store and a scripted input stream.
func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}, &models.Favorite{}, &models.Attendance{}))

	userRepo := repositories.NewGORMUserRepository(db)
	eventRepo := repositories.NewGORMEventRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	log := zap.NewNop()

	out := &bytes.Buffer{}
	ui := New(
		services.NewAuthService(userRepo, favoriteRepo, log),
		services.NewEventService(eventRepo, userRepo, log),
		services.NewFavoriteService(favoriteRepo, eventRepo, log),
		services.NewPreferenceService(userRepo, eventRepo, log),
		strings.NewReader(input),
		out,
	)
	return ui, out
}

func TestRun_RegisterAndQuit(t *testing.T) {
	input := strings.Join([]string{
		"2", "Ana", "ana@x.com", "secret1", // register
		"4", // quit
	}, "\n") + "\n"

	ui, out := newTestConsole(t, input)
	ui.Run()

	assert.Contains(t, out.String(), "User registered successfully!")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_RejectsShortPassword(t *testing.T) {
	input := strings.Join([]string{
		"2", "Ana", "ana@x.com", "123", // too short
		"4",
	}, "\n") + "\n"

	ui, out := newTestConsole(t, input)
	ui.Run()

	assert.Contains(t, out.String(), "Error:")
	assert.NotContains(t, out.String(), "User registered successfully!")
}

func TestRun_InvalidOptionReprompts(t *testing.T) {
	ui, out := newTestConsole(t, "9\n4\n")
	ui.Run()
	assert.Contains(t, out.String(), "Invalid option. Try again.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_StopsOnEOF(t *testing.T) {
	ui, out := newTestConsole(t, "") // input ends immediately
	ui.Run()
	assert.Contains(t, out.String(), "=== QueHayPaHacer? ===")
}

func TestPromptInt_InvalidNumber(t *testing.T) {
	ui, out := newTestConsole(t, "abc\n")
	_, ok := ui.promptInt("Capacity: ")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Invalid number.")
}

func TestPromptPassword_NonTerminalInputReadsPlainLine(t *testing.T) {
	ui, _ := newTestConsole(t, "secret1\n")

	// A non-file input stream must never reach the no-echo path.
	original := readPassword
	readPassword = func(fd int) ([]byte, error) {
		t.Fatal("readPassword must not be called for non-terminal input")
		return nil, nil
	}
	defer func() { readPassword = original }()

	assert.Equal(t, "secret1", ui.promptPassword("Password: "))
}

func TestRenderEvents_UpcomingMarker(t *testing.T) {
	ui, out := newTestConsole(t, "")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	events := []models.Event{
		{ID: 1, Name: "Soon Show", Location: "Park", Date: tomorrow, Category: "Music", Capacity: 10},
		{ID: 2, Name: "Far Show", Location: "Hall", Date: "2099-01-01", Category: "Music", Capacity: 10},
	}
	ui.renderEvents(events, false)

	rendered := out.String()
	soonIdx := strings.Index(rendered, "[1] Soon Show")
	farIdx := strings.Index(rendered, "[2] Far Show")
	require.GreaterOrEqual(t, soonIdx, 0)
	require.Greater(t, farIdx, soonIdx)
	assert.Contains(t, rendered[soonIdx:farIdx], "Happening in the next few days!")
	assert.NotContains(t, rendered[farIdx:], "Happening in the next few days!")
}

func TestRenderEvents_FavoriteMarker(t *testing.T) {
	ui, out := newTestConsole(t, "")
	ui.session = models.NewSession(&models.User{ID: 7, Name: "Ana", Favorites: []uint{1}})

	events := []models.Event{
		{ID: 1, Name: "Fest", Location: "Park", Date: "2099-01-01", Category: "Music", Capacity: 100},
		{ID: 2, Name: "Fair", Location: "Hall", Date: "2099-01-02", Category: "Art", Capacity: 50},
	}
	ui.renderEvents(events, false)

	rendered := out.String()
	assert.Contains(t, rendered, "[1] Fest")
	assert.Contains(t, rendered, "in your favorites")
	assert.Contains(t, rendered, "[2] Fair")
	assert.Contains(t, rendered, "not a favorite")
	assert.Contains(t, rendered, "Organizer: Unknown")
}
