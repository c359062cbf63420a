package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/internal/view"
	"github.com/gin-gonic/gin"
)

var errMissingData = errors.New("missing data field")

// DoctorHandler exposes the doctor CRUD cycle and the edit-session
// lifecycle. List responses always re-fetch first (the original dashboard
// fetched on every view mount); a failed re-fetch serves the stale snapshot
// with a marker instead of erasing it.
type DoctorHandler struct {
	store   *doctor.Store
	session *doctor.Session
}

func NewDoctorHandler(store *doctor.Store, session *doctor.Session) *DoctorHandler {
	return &DoctorHandler{store: store, session: session}
}

func (h *DoctorHandler) Register(r gin.IRouter) {
	r.GET("/api/doctors", h.list)
	r.GET("/api/doctors/form", h.addForm)
	r.POST("/api/doctors", h.create)
	r.PUT("/api/doctors/:id", h.update)
	r.DELETE("/api/doctors/:id", h.remove)

	r.POST("/api/doctors/:id/edit", h.openEdit)
	r.GET("/api/edit", h.editForm)
	r.PATCH("/api/edit", h.setField)
	r.PUT("/api/edit/attachment", h.setAttachment)
	r.POST("/api/edit/commit", h.commit)
	r.DELETE("/api/edit", h.cancel)
}

func (h *DoctorHandler) list(c *gin.Context) {
	refreshErr := h.store.Refresh(c.Request.Context())
	snapshot := h.store.Snapshot()
	if refreshErr != nil && len(snapshot) == 0 {
		writeError(c, refreshErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doctors": view.DoctorList(snapshot),
		"stale":   refreshErr != nil,
	})
}

func (h *DoctorHandler) addForm(c *gin.Context) {
	c.JSON(http.StatusOK, view.AddDoctorForm())
}

func (h *DoctorHandler) create(c *gin.Context) {
	attrs, attachment, err := parseDoctorForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if attrs.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	created, err := h.store.Create(c.Request.Context(), attrs, attachment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *DoctorHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	attrs, attachment, err := parseDoctorForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if attrs.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if err := h.store.Update(c.Request.Context(), id, attrs, attachment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *DoctorHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DoctorHandler) openEdit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	rec, ok := h.store.Get(id)
	if !ok {
		// the cache may simply be cold
		if err := h.store.Refresh(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		if rec, ok = h.store.Get(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
	}
	// opening replaces any session already in progress
	h.session.Open(rec)
	c.JSON(http.StatusOK, view.EditDoctorForm(rec.ID, rec.Attributes, false))
}

func (h *DoctorHandler) editForm(c *gin.Context) {
	id, buf, open := h.session.Current()
	if !open {
		c.JSON(http.StatusNotFound, gin.H{"error": "no edit session open"})
		return
	}
	c.JSON(http.StatusOK, view.EditDoctorForm(id, buf, h.session.HasAttachment()))
}

func (h *DoctorHandler) setField(c *gin.Context) {
	var req struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Field == "Premium" {
		var v bool
		if err := json.Unmarshal(req.Value, &v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Premium takes a boolean"})
			return
		}
		if err := h.session.SetPremium(v); err != nil {
			writeError(c, err)
			return
		}
	} else {
		var v string
		if err := json.Unmarshal(req.Value, &v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": req.Field + " takes a string"})
			return
		}
		if err := h.session.SetField(req.Field, v); err != nil {
			writeError(c, err)
			return
		}
	}

	id, buf, _ := h.session.Current()
	c.JSON(http.StatusOK, view.EditDoctorForm(id, buf, h.session.HasAttachment()))
}

func (h *DoctorHandler) setAttachment(c *gin.Context) {
	file, header, err := c.Request.FormFile("files.image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing files.image part"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.session.SetAttachment(header.Filename, data); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": header.Filename, "size": len(data)})
}

func (h *DoctorHandler) commit(c *gin.Context) {
	if err := h.session.Commit(c.Request.Context()); err != nil {
		// session stays open for retry
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *DoctorHandler) cancel(c *gin.Context) {
	h.session.Cancel()
	c.Status(http.StatusNoContent)
}

// parseDoctorForm decodes the dashboard's mutation payload, the same
// multipart contract the remote store speaks: a `data` field carrying the
// JSON-encoded attributes plus an optional `files.image` part.
func parseDoctorForm(c *gin.Context) (doctor.Attributes, *doctor.Attachment, error) {
	var attrs doctor.Attributes

	data := c.PostForm("data")
	if data == "" {
		return attrs, nil, errMissingData
	}
	if err := json.Unmarshal([]byte(data), &attrs); err != nil {
		return attrs, nil, err
	}

	file, header, err := c.Request.FormFile("files.image")
	if err != nil {
		if err == http.ErrMissingFile {
			return attrs, nil, nil
		}
		return attrs, nil, err
	}
	defer file.Close()
	bytes, err := io.ReadAll(file)
	if err != nil {
		return attrs, nil, err
	}
	return attrs, &doctor.Attachment{Filename: header.Filename, Data: bytes}, nil
}
