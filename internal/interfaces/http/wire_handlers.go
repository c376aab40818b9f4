package http

import (
	"gymdesk/internal/interfaces/http/handlers"
)

type allHandlers struct {
	member       *handlers.MemberHandler
	plan         *handlers.PlanHandler
	staff        *handlers.StaffHandler
	expense      *handlers.ExpenseHandler
	notification *handlers.NotificationHandler
	dashboard    *handlers.DashboardHandler
	auth         *handlers.AuthHandler
}

func (c *Container) wireHandlers() {
	c.hdlrs = &allHandlers{
		member: handlers.NewMemberHandler(
			c.ucs.createMember,
			c.ucs.previewMember,
			c.ucs.getMember,
			c.ucs.listMembers,
			c.ucs.updateMember,
			c.ucs.deleteMember,
		),
		plan: handlers.NewPlanHandler(
			c.ucs.createPlan,
			c.ucs.getPlan,
			c.ucs.listPlans,
			c.ucs.updatePlan,
			c.ucs.deletePlan,
		),
		staff: handlers.NewStaffHandler(
			c.ucs.createStaff,
			c.ucs.getStaff,
			c.ucs.listStaff,
			c.ucs.updateStaff,
			c.ucs.deleteStaff,
		),
		expense: handlers.NewExpenseHandler(
			c.ucs.createExpense,
			c.ucs.listExpenses,
			c.ucs.updateExpense,
			c.ucs.deleteExpense,
		),
		notification: handlers.NewNotificationHandler(
			c.ucs.listNotifications,
			c.ucs.markRead,
			c.ucs.markAllRead,
			c.ucs.countUnread,
			c.ucs.deleteNotif,
		),
		dashboard: handlers.NewDashboardHandler(c.ucs.getDashboard),
		auth:      handlers.NewAuthHandler(c.ucs.login),
	}
}
