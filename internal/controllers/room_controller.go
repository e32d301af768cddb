package controllers

import (
	"net/http"

	"github.com/salaspot/rooms-service/internal/dtos"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/services"
	"github.com/salaspot/rooms-service/internal/storage"
	"github.com/salaspot/rooms-service/internal/utils"
)

type RoomController struct {
	roomService services.RoomService
	store       *storage.LocalStore
}

func NewRoomController(roomService services.RoomService, store *storage.LocalStore) *RoomController {
	return &RoomController{roomService: roomService, store: store}
}

func (c *RoomController) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.RoomFilter{
		Disponible: queryBool(r, "disponible"),
		Tipo:       r.URL.Query().Get("tipo"),
		Limit:      queryInt(r, "per_page"),
	}

	rooms, err := c.roomService.List(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomListResponse{
		Message: "Rooms retrieved",
		Salas:   rooms,
	})
}

func (c *RoomController) ListByCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rooms, err := c.roomService.ListByCompany(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomListResponse{
		Message: "Rooms retrieved",
		Salas:   rooms,
	})
}

func (c *RoomController) Search(w http.ResponseWriter, r *http.Request) {
	var req dtos.SearchRoomsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rooms, err := c.roomService.Search(r.Context(), repositories.RoomSearch{
		Tipo:         req.Tipo,
		CapacidadMin: req.CapacidadMin,
		PrecioMax:    req.PrecioMax,
		Ciudad:       req.Ciudad,
		Disponible:   req.Disponible,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomListResponse{
		Message: "Rooms retrieved",
		Salas:   rooms,
	})
}

func (c *RoomController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dtos.CreateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := c.roomService.Create(r.Context(), user, services.RoomInput{
		EmpresaID:    &req.EmpresaID,
		Nombre:       &req.Nombre,
		Tipo:         &req.Tipo,
		Capacidad:    &req.Capacidad,
		PrecioHora:   &req.PrecioHora,
		Equipamiento: req.Equipamiento,
		Disponible:   req.Disponible,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.RoomResponse{
		Message: "Room created",
		Sala:    room,
	})
}

func (c *RoomController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	room, err := c.roomService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomResponse{
		Message: "Room retrieved",
		Sala:    room,
	})
}

func (c *RoomController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := c.roomService.Update(r.Context(), user, id, services.RoomInput{
		Nombre:       req.Nombre,
		Tipo:         req.Tipo,
		Capacidad:    req.Capacidad,
		PrecioHora:   req.PrecioHora,
		Equipamiento: req.Equipamiento,
		Disponible:   req.Disponible,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomResponse{
		Message: "Room updated",
		Sala:    room,
	})
}

func (c *RoomController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.roomService.Delete(r.Context(), user, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Room deleted"})
}

func (c *RoomController) UploadImage(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	url, ok := saveUploadedImage(w, r, c.store, "rooms")
	if !ok {
		return
	}

	room, err := c.roomService.SetImage(r.Context(), user, id, url)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RoomResponse{
		Message: "Image uploaded",
		Sala:    room,
	})
}
