package http

import (
	"fmt"
	"time"

	authUsecases "gymdesk/internal/application/auth/usecases"
	dashboardUsecases "gymdesk/internal/application/dashboard/usecases"
	expenseUsecases "gymdesk/internal/application/expense/usecases"
	memberUsecases "gymdesk/internal/application/member/usecases"
	notificationUsecases "gymdesk/internal/application/notification/usecases"
	planUsecases "gymdesk/internal/application/plan/usecases"
	staffUsecases "gymdesk/internal/application/staff/usecases"
	"gymdesk/internal/domain/member"
	sharedEvents "gymdesk/internal/domain/shared/events"
	"gymdesk/internal/infrastructure/cache"
	"gymdesk/internal/shared/services/markdown"
)

type allUseCases struct {
	createMember  *memberUsecases.CreateMemberUseCase
	previewMember *memberUsecases.PreviewMemberUseCase
	getMember     *memberUsecases.GetMemberUseCase
	listMembers   *memberUsecases.ListMembersUseCase
	updateMember  *memberUsecases.UpdateMemberUseCase
	deleteMember  *memberUsecases.DeleteMemberUseCase

	createPlan *planUsecases.CreatePlanUseCase
	getPlan    *planUsecases.GetPlanUseCase
	listPlans  *planUsecases.ListPlansUseCase
	updatePlan *planUsecases.UpdatePlanUseCase
	deletePlan *planUsecases.DeletePlanUseCase

	createStaff *staffUsecases.CreateStaffUseCase
	getStaff    *staffUsecases.GetStaffUseCase
	listStaff   *staffUsecases.ListStaffUseCase
	updateStaff *staffUsecases.UpdateStaffUseCase
	deleteStaff *staffUsecases.DeleteStaffUseCase

	createExpense *expenseUsecases.CreateExpenseUseCase
	listExpenses  *expenseUsecases.ListExpensesUseCase
	updateExpense *expenseUsecases.UpdateExpenseUseCase
	deleteExpense *expenseUsecases.DeleteExpenseUseCase

	listNotifications *notificationUsecases.ListNotificationsUseCase
	markRead          *notificationUsecases.MarkNotificationReadUseCase
	markAllRead       *notificationUsecases.MarkAllNotificationsReadUseCase
	countUnread       *notificationUsecases.CountUnreadNotificationsUseCase
	deleteNotif       *notificationUsecases.DeleteNotificationUseCase

	getDashboard *dashboardUsecases.GetDashboardUseCase

	login *authUsecases.LoginUseCase
}

func (c *Container) wireUseCases() error {
	expiryCalc := member.NewExpiryCalculator(c.repos.plan, c.log)

	createMember := memberUsecases.NewCreateMemberUseCase(c.repos.member, expiryCalc, c.log)

	getDashboard := dashboardUsecases.NewGetDashboardUseCase(
		c.repos.member, c.repos.plan, c.repos.expense, c.repos.staff, c.log,
	)
	if c.redis != nil {
		ttl := time.Duration(c.cfg.Dashboard.CacheTTLSeconds) * time.Second
		getDashboard.SetCache(cache.NewRedisDashboardCache(c.redis, ttl, c.log))
	}

	renderer := markdown.NewMarkdownService()

	c.ucs = &allUseCases{
		createMember:  createMember,
		previewMember: memberUsecases.NewPreviewMemberUseCase(c.repos.member, expiryCalc, c.log),
		getMember:     memberUsecases.NewGetMemberUseCase(c.repos.member, c.log),
		listMembers:   memberUsecases.NewListMembersUseCase(c.repos.member, c.log),
		updateMember:  memberUsecases.NewUpdateMemberUseCase(c.repos.member, c.log),
		deleteMember:  memberUsecases.NewDeleteMemberUseCase(c.repos.member, c.log),

		createPlan: planUsecases.NewCreatePlanUseCase(c.repos.plan, c.log),
		getPlan:    planUsecases.NewGetPlanUseCase(c.repos.plan, c.log),
		listPlans:  planUsecases.NewListPlansUseCase(c.repos.plan, c.log),
		updatePlan: planUsecases.NewUpdatePlanUseCase(c.repos.plan, c.log),
		deletePlan: planUsecases.NewDeletePlanUseCase(c.repos.plan, c.log),

		createStaff: staffUsecases.NewCreateStaffUseCase(c.repos.staff, c.log),
		getStaff:    staffUsecases.NewGetStaffUseCase(c.repos.staff, c.log),
		listStaff:   staffUsecases.NewListStaffUseCase(c.repos.staff, c.log),
		updateStaff: staffUsecases.NewUpdateStaffUseCase(c.repos.staff, c.log),
		deleteStaff: staffUsecases.NewDeleteStaffUseCase(c.repos.staff, c.log),

		createExpense: expenseUsecases.NewCreateExpenseUseCase(c.repos.expense, c.log),
		listExpenses:  expenseUsecases.NewListExpensesUseCase(c.repos.expense, c.log),
		updateExpense: expenseUsecases.NewUpdateExpenseUseCase(c.repos.expense, c.log),
		deleteExpense: expenseUsecases.NewDeleteExpenseUseCase(c.repos.expense, c.log),

		listNotifications: notificationUsecases.NewListNotificationsUseCase(c.repos.notification, renderer, c.log),
		markRead:          notificationUsecases.NewMarkNotificationReadUseCase(c.repos.notification, c.log),
		markAllRead:       notificationUsecases.NewMarkAllNotificationsReadUseCase(c.repos.notification, c.log),
		countUnread:       notificationUsecases.NewCountUnreadNotificationsUseCase(c.repos.notification, c.log),
		deleteNotif:       notificationUsecases.NewDeleteNotificationUseCase(c.repos.notification, c.log),

		getDashboard: getDashboard,

		login: authUsecases.NewLoginUseCase(c.repos.adminUser, c.hasher, &tokenIssuerAdapter{c.jwtSvc}, c.log),
	}

	return c.wireEvents(createMember)
}

// wireEvents starts the in-process dispatcher and connects creation events to
// the notification feed.
func (c *Container) wireEvents(createMember *memberUsecases.CreateMemberUseCase) error {
	dispatcher := sharedEvents.NewInMemoryEventDispatcher(100)
	dispatcher.SetErrorCallback(func(event sharedEvents.DomainEvent, err error) {
		c.log.Warnw("event handler failed", "event_type", event.GetEventType(), "aggregate_id", event.GetAggregateID(), "error", err)
	})

	handler := notificationUsecases.NewMemberCreatedHandler(c.repos.notification, c.log)
	if err := dispatcher.Subscribe(member.EventTypeMemberCreated, handler); err != nil {
		return fmt.Errorf("failed to subscribe member created handler: %w", err)
	}

	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	createMember.SetEventPublisher(dispatcher)
	c.dispatcher = dispatcher
	return nil
}
