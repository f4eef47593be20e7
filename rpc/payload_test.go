package rpc

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/meshproto/attributes"
	"github.com/c360/meshproto/errors"
)

type doorState struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
}

const doorPayloadType = "body.door.v1"

func TestMapResponse_Success(t *testing.T) {
	payload, err := NewPayload(doorPayloadType, doorState{Name: "front_left", Locked: true})
	require.NoError(t, err)

	r := MapResponse[doorState](payload, nil, doorPayloadType)

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "front_left", v.Name)
	assert.True(t, v.Locked)
}

func TestMapResponse_UpstreamError(t *testing.T) {
	boom := stderrors.New("transport exploded")
	r := MapResponse[doorState](nil, boom, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.True(t, stderrors.Is(r.Err(), boom))
}

func TestMapResponse_NilPayload(t *testing.T) {
	r := MapResponse[doorState](nil, nil, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.True(t, stderrors.Is(r.Err(), errors.ErrNilPayload))
}

func TestMapResponse_NonOKStatusIsFailure(t *testing.T) {
	payload := StatusPayload(attributes.StatusNotFound, "no such door")
	r := MapResponse[doorState](payload, nil, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.Contains(t, r.Err().Error(), "NOT_FOUND")
	assert.Contains(t, r.Err().Error(), "no such door")
}

func TestMapResponse_OKStatusWithoutValueIsFailure(t *testing.T) {
	payload := StatusPayload(attributes.StatusOK, "")
	r := MapResponse[doorState](payload, nil, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.True(t, stderrors.Is(r.Err(), errors.ErrTypeMismatch))
}

func TestMapResponse_StatusExpected(t *testing.T) {
	// A caller that wants the status itself gets it as a success
	payload := StatusPayload(attributes.StatusOK, "done")
	r := MapResponse[Status](payload, nil, StatusPayloadType)

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, attributes.StatusOK, v.Code)
}

func TestMapResponse_TypeMismatch(t *testing.T) {
	payload, err := NewPayload("telemetry.gps.v1", map[string]float64{"lat": 48.1})
	require.NoError(t, err)

	r := MapResponse[doorState](payload, nil, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.True(t, stderrors.Is(r.Err(), errors.ErrTypeMismatch))
	assert.Contains(t, r.Err().Error(), "telemetry.gps.v1")
	assert.Contains(t, r.Err().Error(), doorPayloadType)
}

func TestMapResponse_UndecodableData(t *testing.T) {
	payload := &Payload{Type: doorPayloadType, Data: []byte(`{"locked": "not-a-bool"`)}
	r := MapResponse[doorState](payload, nil, doorPayloadType)

	require.True(t, r.IsFailure())
	assert.True(t, errors.IsInvalid(r.Err()))
}
