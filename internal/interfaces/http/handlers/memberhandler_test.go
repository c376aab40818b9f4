package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memberdto "gymdesk/internal/application/member/dto"
	"gymdesk/internal/interfaces/http/handlers/testutil"
	"gymdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateMemberUC struct {
	result *memberdto.MemberResponse
	err    error
}

func (m *mockCreateMemberUC) Execute(ctx context.Context, req memberdto.CreateMemberRequest) (*memberdto.MemberResponse, error) {
	return m.result, m.err
}

type mockPreviewMemberUC struct {
	result *memberdto.PreviewMemberResponse
	err    error
}

func (m *mockPreviewMemberUC) Execute(ctx context.Context, req memberdto.PreviewMemberRequest) (*memberdto.PreviewMemberResponse, error) {
	return m.result, m.err
}

type mockGetMemberUC struct {
	result  *memberdto.MemberResponse
	err     error
	gotCode string
}

func (m *mockGetMemberUC) Execute(ctx context.Context, code string) (*memberdto.MemberResponse, error) {
	m.gotCode = code
	return m.result, m.err
}

type mockListMembersUC struct {
	result   []*memberdto.MemberResponse
	total    int64
	err      error
	gotQuery memberdto.ListMembersQuery
}

func (m *mockListMembersUC) Execute(ctx context.Context, query memberdto.ListMembersQuery) ([]*memberdto.MemberResponse, int64, error) {
	m.gotQuery = query
	return m.result, m.total, m.err
}

type mockUpdateMemberUC struct {
	result *memberdto.MemberResponse
	err    error
}

func (m *mockUpdateMemberUC) Execute(ctx context.Context, code string, req memberdto.UpdateMemberRequest) (*memberdto.MemberResponse, error) {
	return m.result, m.err
}

type mockDeleteMemberUC struct {
	err     error
	gotCode string
}

func (m *mockDeleteMemberUC) Execute(ctx context.Context, code string) error {
	m.gotCode = code
	return m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func sampleMemberResponse() *memberdto.MemberResponse {
	return &memberdto.MemberResponse{
		Code:          "5JA01",
		Name:          "Jordan Riley",
		Phone:         "555-0101",
		Plan:          "Monthly",
		JoinDate:      "2025-01-15",
		ExpiryDate:    "2025-02-15",
		Status:        "active",
		PaymentStatus: "unpaid",
	}
}

func newMemberHandlerForTest(
	create createMemberUseCase,
	preview previewMemberUseCase,
	get getMemberUseCase,
	list listMembersUseCase,
	update updateMemberUseCase,
	del deleteMemberUseCase,
) *MemberHandler {
	return NewMemberHandler(create, preview, get, list, update, del)
}

// =====================================================================
// CreateMember
// =====================================================================

func TestCreateMember_Success(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{result: sampleMemberResponse()},
		&mockPreviewMemberUC{}, &mockGetMemberUC{}, &mockListMembersUC{},
		&mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/members", memberdto.CreateMemberRequest{
		Name:     "Jordan Riley",
		Phone:    "555-0101",
		Plan:     "Monthly",
		JoinDate: "2025-01-15",
	})

	handler.CreateMember(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var member memberdto.MemberResponse
	require.NoError(t, json.Unmarshal(resp.Data, &member))
	assert.Equal(t, "5JA01", member.Code)
	assert.Equal(t, "2025-02-15", member.ExpiryDate)
}

func TestCreateMember_InvalidBody(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, &mockGetMemberUC{},
		&mockListMembersUC{}, &mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	// Missing required fields fails binding.
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/members", map[string]string{
		"name": "Jordan Riley",
	})

	handler.CreateMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
}

func TestCreateMember_UseCaseError(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{err: errors.NewConflictError("could not allocate a unique member code, please retry")},
		&mockPreviewMemberUC{}, &mockGetMemberUC{}, &mockListMembersUC{},
		&mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/members", memberdto.CreateMemberRequest{
		Name:     "Jordan Riley",
		Phone:    "555-0101",
		Plan:     "Monthly",
		JoinDate: "2025-01-15",
	})

	handler.CreateMember(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// PreviewMember
// =====================================================================

func TestPreviewMember_Success(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{},
		&mockPreviewMemberUC{result: &memberdto.PreviewMemberResponse{Code: "5OC05", ExpiryDate: "2026-01-05"}},
		&mockGetMemberUC{}, &mockListMembersUC{}, &mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/members/preview", memberdto.PreviewMemberRequest{
		Plan:     "Quarterly",
		JoinDate: "2025-10-05",
	})

	handler.PreviewMember(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var preview memberdto.PreviewMemberResponse
	require.NoError(t, json.Unmarshal(resp.Data, &preview))
	assert.Equal(t, "5OC05", preview.Code)
	assert.Equal(t, "2026-01-05", preview.ExpiryDate)
}

// =====================================================================
// GetMember
// =====================================================================

func TestGetMember_TrimsCodeParam(t *testing.T) {
	getUC := &mockGetMemberUC{result: sampleMemberResponse()}
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, getUC,
		&mockListMembersUC{}, &mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/members/5JA01", nil)
	testutil.SetURLParam(c, "code", " 5JA01 ")

	handler.GetMember(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5JA01", getUC.gotCode)
}

func TestGetMember_NotFound(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{},
		&mockGetMemberUC{err: errors.NewNotFoundError("member not found")},
		&mockListMembersUC{}, &mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/members/9ZZ99", nil)
	testutil.SetURLParam(c, "code", "9ZZ99")

	handler.GetMember(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// ListMembers
// =====================================================================

func TestListMembers_PassesFiltersAndPagination(t *testing.T) {
	listUC := &mockListMembersUC{result: []*memberdto.MemberResponse{sampleMemberResponse()}, total: 1}
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, &mockGetMemberUC{},
		listUC, &mockUpdateMemberUC{}, &mockDeleteMemberUC{},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/members", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":         "active",
		"payment_status": "unpaid",
		"plan":           "Monthly",
		"search":         "Jordan",
		"page":           "2",
		"page_size":      "10",
	})

	handler.ListMembers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active", listUC.gotQuery.Status)
	assert.Equal(t, "unpaid", listUC.gotQuery.PaymentStatus)
	assert.Equal(t, "Monthly", listUC.gotQuery.Plan)
	assert.Equal(t, "Jordan", listUC.gotQuery.Search)
	assert.Equal(t, 2, listUC.gotQuery.Page)
	assert.Equal(t, 10, listUC.gotQuery.PageSize)
}

// =====================================================================
// UpdateMember
// =====================================================================

func TestUpdateMember_Success(t *testing.T) {
	updated := sampleMemberResponse()
	updated.PaymentStatus = "paid"
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, &mockGetMemberUC{},
		&mockListMembersUC{}, &mockUpdateMemberUC{result: updated}, &mockDeleteMemberUC{},
	)

	newStatus := "paid"
	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/members/5JA01", memberdto.UpdateMemberRequest{
		PaymentStatus: &newStatus,
	})
	testutil.SetURLParam(c, "code", "5JA01")

	handler.UpdateMember(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var member memberdto.MemberResponse
	require.NoError(t, json.Unmarshal(resp.Data, &member))
	assert.Equal(t, "paid", member.PaymentStatus)
}

// =====================================================================
// DeleteMember
// =====================================================================

func TestDeleteMember_Success(t *testing.T) {
	deleteUC := &mockDeleteMemberUC{}
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, &mockGetMemberUC{},
		&mockListMembersUC{}, &mockUpdateMemberUC{}, deleteUC,
	)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/members/5JA01", nil)
	testutil.SetURLParam(c, "code", "5JA01")

	handler.DeleteMember(c)
	// Flush gin's deferred status write, as the engine does after the
	// handler chain; without a body the recorder otherwise stays at 200.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "5JA01", deleteUC.gotCode)
}

func TestDeleteMember_NotFound(t *testing.T) {
	handler := newMemberHandlerForTest(
		&mockCreateMemberUC{}, &mockPreviewMemberUC{}, &mockGetMemberUC{},
		&mockListMembersUC{}, &mockUpdateMemberUC{},
		&mockDeleteMemberUC{err: errors.NewNotFoundError("member not found")},
	)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/members/9ZZ99", nil)
	testutil.SetURLParam(c, "code", "9ZZ99")

	handler.DeleteMember(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
