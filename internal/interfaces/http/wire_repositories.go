package http

import (
	"gymdesk/internal/domain/adminuser"
	"gymdesk/internal/domain/expense"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/notification"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/infrastructure/repository"
)

type repositories struct {
	member       member.Repository
	plan         plan.Repository
	staff        staff.Repository
	expense      expense.Repository
	notification notification.Repository
	adminUser    adminuser.Repository
}

func (c *Container) wireRepositories() {
	c.repos = &repositories{
		member:       repository.NewMemberRepository(c.db, c.log),
		plan:         repository.NewPlanRepository(c.db, c.log),
		staff:        repository.NewStaffRepository(c.db, c.log),
		expense:      repository.NewExpenseRepository(c.db, c.log),
		notification: repository.NewNotificationRepository(c.db, c.log),
		adminUser:    repository.NewAdminUserRepository(c.db, c.log),
	}
}
