package rosinterop

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/PlumpMath/ros-interop/internal/models"
	"github.com/PlumpMath/ros-interop/internal/myerrors"
	"github.com/PlumpMath/ros-interop/internal/services"
	"github.com/gin-gonic/gin"
)

// Endpoints follow the interoperability server's path layout so that
// pkg/interopapi can talk to this server unchanged.
var Endpoints = struct {
	Login string

	TargetCreate string
	TargetGet    string
	TargetGetAll string
	TargetUpdate string
	TargetDelete string

	TargetImageSet    string
	TargetImageGet    string
	TargetImageDelete string
}{
	Login: "/api/login",

	TargetCreate: "/api/targets",
	TargetGet:    "/api/targets/:id",
	TargetGetAll: "/api/targets",
	TargetUpdate: "/api/targets/:id",
	TargetDelete: "/api/targets/:id",

	TargetImageSet:    "/api/targets/:id/image",
	TargetImageGet:    "/api/targets/:id/image",
	TargetImageDelete: "/api/targets/:id/image",
}

type Server struct {
	router        *gin.Engine
	httpServer    *http.Server
	targetService services.TargetService
}

func NewServer(targetService services.TargetService) *Server {
	router := gin.Default()

	server := &Server{
		router:        router,
		targetService: targetService,
	}
	router.POST(Endpoints.Login, server.handleLogin)

	router.POST(Endpoints.TargetCreate, server.handleAddTarget)
	router.GET(Endpoints.TargetGet, server.handleGetTarget)
	router.GET(Endpoints.TargetGetAll, server.handleGetAllTargets)
	router.PUT(Endpoints.TargetUpdate, server.handleUpdateTarget)
	router.DELETE(Endpoints.TargetDelete, server.handleDeleteTarget)

	// The interoperability server accepts both verbs for image upload.
	router.POST(Endpoints.TargetImageSet, server.handleSetTargetImage)
	router.PUT(Endpoints.TargetImageSet, server.handleSetTargetImage)
	router.GET(Endpoints.TargetImageGet, server.handleGetTargetImage)
	router.DELETE(Endpoints.TargetImageDelete, server.handleDeleteTargetImage)
	return server
}

// handleLogin accepts any non-empty credentials. Session enforcement is the
// remote interoperability server's concern; serving the endpoint keeps the
// client library usable against this server.
func (s *Server) handleLogin(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")
	if username == "" || password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "username and password are required",
		})
		return
	}
	ctx.String(http.StatusOK, "Login Successful")
}

func (s *Server) handleAddTarget(ctx *gin.Context) {
	var target models.Target
	if err := ctx.BindJSON(&target); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "incorrect target format: " + err.Error(),
		})
		return
	}

	newTarget, err := s.targetService.Add(ctx, target)
	if err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newTarget)
}

func (s *Server) handleGetTarget(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}

	target, err := s.targetService.GetById(ctx, id)
	if err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, target)
}

func (s *Server) handleGetAllTargets(ctx *gin.Context) {
	targets, err := s.targetService.GetAll(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "error while attempting to fetch all targets:" + err.Error(),
		})
		return
	}
	if targets == nil {
		targets = []models.Target{}
	}
	ctx.JSON(http.StatusOK, targets)
}

func (s *Server) handleUpdateTarget(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}
	var target models.Target
	if err := ctx.BindJSON(&target); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "incorrect target format: " + err.Error(),
		})
		return
	}

	updatedTarget, err := s.targetService.Update(ctx, id, target)
	if err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedTarget)
}

func (s *Server) handleDeleteTarget(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}

	if err := s.targetService.DeleteById(ctx, id); err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, nil)
}

func (s *Server) handleSetTargetImage(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}
	image, err := ctx.GetRawData()
	if err != nil || len(image) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "image body is required",
		})
		return
	}

	if err := s.targetService.SetImage(ctx, id, ctx.ContentType(), image); err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, nil)
}

func (s *Server) handleGetTargetImage(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}

	img, err := s.targetService.GetImage(ctx, id)
	if err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, img.ContentType, img.Image)
}

func (s *Server) handleDeleteTargetImage(ctx *gin.Context) {
	id, ok := targetId(ctx)
	if !ok {
		return
	}

	if err := s.targetService.DeleteImage(ctx, id); err != nil {
		s.writeTargetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, nil)
}

func targetId(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": "target not found. Use number as id!",
		})
		return 0, false
	}
	return id, true
}

func (s *Server) writeTargetError(ctx *gin.Context, err error) {
	var validationErr *myerrors.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": validationErr.Error(),
			"field":   validationErr.Field,
		})
		return
	}
	var notFoundErr *myerrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": notFoundErr.Error(),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"message": err.Error(),
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
