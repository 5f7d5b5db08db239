package rosinterop_test

import (
	"context"
	"database/sql"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	rosinterop "github.com/PlumpMath/ros-interop/internal"
	"github.com/PlumpMath/ros-interop/internal/models"
	"github.com/PlumpMath/ros-interop/internal/repositories"
	"github.com/PlumpMath/ros-interop/internal/services"
	"github.com/PlumpMath/ros-interop/pkg/interopapi"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

var client *interopapi.Client

func TestMain(m *testing.M) {
	ctx := context.Background()
	pwd, _ := os.Getwd()
	initSQLPath := filepath.Join(pwd, "db", "init.sql")
	mysqlContainer, err := mysql.Run(ctx,
		"mysql:9.4.0",
		mysql.WithDatabase("interop"),
		mysql.WithUsername("root"),
		mysql.WithPassword("password"),
		mysql.WithScripts(initSQLPath),
	)
	defer func() {
		if mysqlContainer == nil {
			return
		}
		if err := mysqlContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	connectionString, err := mysqlContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get connection string: %s", err)
	}

	db, err := sql.Open("mysql", connectionString)
	if err != nil {
		log.Fatal(err)
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(10)
	defer db.Close()

	targetRepo := repositories.NewMySQLTargetRepository(db)
	imageRepo := repositories.NewMySQLTargetImageRepository(db)
	targetService := services.NewDefaultTargetService(targetRepo, imageRepo)
	server := rosinterop.NewServer(targetService)

	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()

	// The client library talks to our own server the same way it talks to
	// the real interoperability server.
	client = interopapi.NewClient(httpServer.URL, "testuser", "testpass", 5*time.Second)
	if err := client.Login(ctx); err != nil {
		log.Fatalf("failed to login: %s", err)
	}

	code := m.Run()
	os.Exit(code)
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }
func boolp(v bool) *bool     { return &v }

func orientation(v models.Orientation) *models.Orientation { return &v }
func shape(v models.Shape) *models.Shape                   { return &v }
func color(v models.Color) *models.Color                   { return &v }

func standardTarget() models.Target {
	return models.Target{
		Type:              models.TypeStandard,
		Latitude:          f64(38.0),
		Longitude:         f64(-76.0),
		Orientation:       orientation(models.North),
		Shape:             shape(models.Circle),
		BackgroundColor:   color(models.White),
		AlphanumericColor: color(models.Black),
		Alphanumeric:      str("A"),
		Autonomous:        boolp(false),
	}
}

func TestTargetLifecycle(t *testing.T) {
	ctx := context.Background()
	target := standardTarget()

	id, err := client.PostTarget(ctx, target)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := client.GetTarget(ctx, id)
	require.NoError(t, err)
	want := target
	want.Id = id
	assert.Equal(t, want, got)

	update := standardTarget()
	update.Alphanumeric = str("B")
	update.Orientation = orientation(models.Southeast)
	require.NoError(t, client.PutTarget(ctx, id, update))

	got, err = client.GetTarget(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "B", *got.Alphanumeric)
	assert.Equal(t, models.Southeast, *got.Orientation)

	all, err := client.GetAllTargets(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, id)

	require.NoError(t, client.DeleteTarget(ctx, id))

	_, err = client.GetTarget(ctx, id)
	assert.True(t, interopapi.IsNotFound(err))
	// A second delete must fail too.
	assert.True(t, interopapi.IsNotFound(client.DeleteTarget(ctx, id)))
}

func TestAddEmergentTargetWithoutShape(t *testing.T) {
	ctx := context.Background()
	target := models.Target{
		Type:        models.TypeEmergent,
		Latitude:    f64(38.3),
		Longitude:   f64(-76.1),
		Description: str("person waving"),
	}

	id, err := client.PostTarget(ctx, target)
	require.NoError(t, err)

	got, err := client.GetTarget(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Shape)
	assert.Nil(t, got.Orientation)
	assert.Equal(t, "person waving", *got.Description)

	require.NoError(t, client.DeleteTarget(ctx, id))
}

func TestAddTargetMissingRequiredFields(t *testing.T) {
	ctx := context.Background()

	_, err := client.PostTarget(ctx, models.Target{Type: models.TypeStandard})
	require.Error(t, err)

	httpErr := new(interopapi.HTTPError)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.StatusCode)
}

func TestUpdateUnknownTarget(t *testing.T) {
	ctx := context.Background()

	err := client.PutTarget(ctx, 999999, standardTarget())
	assert.True(t, interopapi.IsNotFound(err))
}

func TestTargetImageLifecycle(t *testing.T) {
	ctx := context.Background()

	id, err := client.PostTarget(ctx, standardTarget())
	require.NoError(t, err)

	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0xde, 0xad}
	require.NoError(t, client.PostTargetImage(ctx, id, png, "image/png"))

	image, contentType, err := client.GetTargetImage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, png, image)
	assert.Equal(t, "image/png", contentType)

	// Replacing the image is allowed without touching the target record.
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0}
	require.NoError(t, client.PostTargetImage(ctx, id, jpeg, "image/jpeg"))
	image, contentType, err = client.GetTargetImage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, jpeg, image)
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, client.DeleteTargetImage(ctx, id))
	_, _, err = client.GetTargetImage(ctx, id)
	assert.True(t, interopapi.IsNotFound(err))
	assert.True(t, interopapi.IsNotFound(client.DeleteTargetImage(ctx, id)))

	require.NoError(t, client.DeleteTarget(ctx, id))
}

func TestSetImageOnUnknownTarget(t *testing.T) {
	ctx := context.Background()

	err := client.PostTargetImage(ctx, 999999, []byte{1, 2, 3}, "image/png")
	assert.True(t, interopapi.IsNotFound(err))
}
