package handlers

import (
	"context"

	"gymdesk/internal/application/member/dto"
)

// Use case interfaces for MemberHandler

type createMemberUseCase interface {
	Execute(ctx context.Context, request dto.CreateMemberRequest) (*dto.MemberResponse, error)
}

type previewMemberUseCase interface {
	Execute(ctx context.Context, request dto.PreviewMemberRequest) (*dto.PreviewMemberResponse, error)
}

type getMemberUseCase interface {
	Execute(ctx context.Context, code string) (*dto.MemberResponse, error)
}

type listMembersUseCase interface {
	Execute(ctx context.Context, query dto.ListMembersQuery) ([]*dto.MemberResponse, int64, error)
}

type updateMemberUseCase interface {
	Execute(ctx context.Context, code string, request dto.UpdateMemberRequest) (*dto.MemberResponse, error)
}

type deleteMemberUseCase interface {
	Execute(ctx context.Context, code string) error
}
