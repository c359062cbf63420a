package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/clinicdash/clinicdash/internal/appointment"
	"github.com/clinicdash/clinicdash/internal/config"
	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/pkg/logger"
	"github.com/clinicdash/clinicdash/pkg/metrics"
)

// Client talks to the remote collection endpoint. Every call is single-shot:
// one round trip, no retries, no backoff. Mutating calls use the multipart
// contract the remote store expects: a `data` field carrying the full
// JSON-encoded attributes and, when present, a `files.image` part with the
// raw bytes under the original filename.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(cfg config.ContentAPIConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
	}
}

type doctorListEnvelope struct {
	Data []doctor.Record `json:"data"`
}

type doctorEnvelope struct {
	Data doctor.Record `json:"data"`
}

type appointmentListEnvelope struct {
	Data []appointment.Record `json:"data"`
}

// errorEnvelope matches the remote store's structured error body.
type errorEnvelope struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListDoctors fetches the full current collection; the server returns every
// record, no pagination.
func (c *Client) ListDoctors(ctx context.Context) ([]doctor.Record, error) {
	const op = "list_doctors"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/doctors", nil)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(op, resp); err != nil {
		return nil, err
	}

	var envelope doctorListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, c.networkErr(op, err)
	}

	logger.Debugf("content: listed %d doctors", len(envelope.Data))
	return envelope.Data, nil
}

// GetDoctor fetches a single record by id.
func (c *Client) GetDoctor(ctx context.Context, id int64) (doctor.Record, error) {
	const op = "get_doctor"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	url := fmt.Sprintf("%s/api/doctors/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return doctor.Record{}, c.networkErr(op, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return doctor.Record{}, c.networkErr(op, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(op, resp); err != nil {
		return doctor.Record{}, err
	}

	var envelope doctorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return doctor.Record{}, c.networkErr(op, err)
	}
	return envelope.Data, nil
}

// CreateDoctor submits a new record. The attachment is optional.
func (c *Client) CreateDoctor(ctx context.Context, attrs doctor.Attributes, attachment *doctor.Attachment) (doctor.Record, error) {
	const op = "create_doctor"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	resp, err := c.submit(ctx, op, http.MethodPost, c.baseURL+"/api/doctors", attrs, attachment)
	if err != nil {
		return doctor.Record{}, err
	}
	defer resp.Body.Close()

	var envelope doctorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return doctor.Record{}, c.networkErr(op, err)
	}

	logger.Infof("content: created doctor %d (%s)", envelope.Data.ID, envelope.Data.Attributes.Name)
	return envelope.Data, nil
}

// UpdateDoctor replaces all fields of an existing record. A nil attachment
// means "leave the remote attachment alone", never "clear it"; the remote
// store treats an absent files.image part as a no-op.
func (c *Client) UpdateDoctor(ctx context.Context, id int64, attrs doctor.Attributes, attachment *doctor.Attachment) error {
	const op = "update_doctor"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	url := fmt.Sprintf("%s/api/doctors/%d", c.baseURL, id)
	resp, err := c.submit(ctx, op, http.MethodPut, url, attrs, attachment)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Infof("content: updated doctor %d", id)
	return nil
}

// DeleteDoctor removes a record permanently. There is no soft delete; the
// caller is responsible for having confirmed with the user.
func (c *Client) DeleteDoctor(ctx context.Context, id int64) error {
	const op = "delete_doctor"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	url := fmt.Sprintf("%s/api/doctors/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return c.networkErr(op, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.networkErr(op, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(op, resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Infof("content: deleted doctor %d", id)
	return nil
}

// ListAppointments fetches the read-only appointment collection.
func (c *Client) ListAppointments(ctx context.Context) ([]appointment.Record, error) {
	const op = "list_appointments"
	metrics.ContentRequests.WithLabelValues(op).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/appointments", nil)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(op, resp); err != nil {
		return nil, err
	}

	var envelope appointmentListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, c.networkErr(op, err)
	}

	logger.Debugf("content: listed %d appointments", len(envelope.Data))
	return envelope.Data, nil
}

// submit encodes attributes (and the optional attachment) as one multipart
// payload and performs the request, returning the response only on 2xx.
func (c *Client) submit(ctx context.Context, op, method, url string, attrs doctor.Attributes, attachment *doctor.Attachment) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	payload, err := json.Marshal(attrs)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	if err := writer.WriteField("data", string(payload)); err != nil {
		return nil, c.networkErr(op, err)
	}
	if attachment != nil {
		part, err := writer.CreateFormFile("files.image", attachment.Filename)
		if err != nil {
			return nil, c.networkErr(op, err)
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return nil, c.networkErr(op, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, c.networkErr(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.networkErr(op, err)
	}
	if err := c.checkStatus(op, resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// checkStatus turns a non-2xx response into a serverRejected TransportError,
// extracting the server's message when the body carries one.
func (c *Client) checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	logger.Errorf("content: %s rejected: status=%d message=%q", op, resp.StatusCode, message)
	metrics.ContentFailures.WithLabelValues(op, string(KindServerRejected)).Inc()
	return &TransportError{Kind: KindServerRejected, Op: op, Status: resp.StatusCode, Message: message}
}

func (c *Client) networkErr(op string, err error) error {
	logger.Errorf("content: %s failed before a response arrived: %v", op, err)
	metrics.ContentFailures.WithLabelValues(op, string(KindNetwork)).Inc()
	return &TransportError{Kind: KindNetwork, Op: op, Message: "request did not complete", Err: err}
}
