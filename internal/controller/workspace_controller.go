package controller

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IWorkspaceController serves the read-only pages: dashboard, billing,
// members, settings, analytics and automations.
type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Billing(ctx *fiber.Ctx) error
	Members(ctx *fiber.Ctx) error
	Settings(ctx *fiber.Ctx) error
	Analytics(ctx *fiber.Ctx) error
	Automations(ctx *fiber.Ctx) error
}

type workspaceController struct {
	dashboardService  service.IDashboardService
	billingService    service.IBillingService
	memberService     service.IMemberService
	settingsService   service.ISettingsService
	analyticsService  service.IAnalyticsService
	automationService service.IAutomationService
	auth              fiber.Handler
}

func NewWorkspaceController(
	dashboardService service.IDashboardService,
	billingService service.IBillingService,
	memberService service.IMemberService,
	settingsService service.ISettingsService,
	analyticsService service.IAnalyticsService,
	automationService service.IAutomationService,
	auth fiber.Handler,
) IWorkspaceController {
	return &workspaceController{
		dashboardService:  dashboardService,
		billingService:    billingService,
		memberService:     memberService,
		settingsService:   settingsService,
		analyticsService:  analyticsService,
		automationService: automationService,
		auth:              auth,
	}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.auth, c.Dashboard)
	r.Get("/billing", c.auth, c.Billing)
	r.Get("/members", c.auth, c.Members)
	r.Get("/settings", c.auth, c.Settings)
	r.Get("/analytics", c.auth, c.Analytics)
	r.Get("/automations", c.auth, c.Automations)
}

func (c *workspaceController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Overview(ctx.UserContext(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *workspaceController) Billing(ctx *fiber.Ctx) error {
	var req dto.BillingOverviewRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.billingService.Overview(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get billing", res))
}

func (c *workspaceController) Members(ctx *fiber.Ctx) error {
	var req dto.ListMembersRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.memberService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list members", res))
}

func (c *workspaceController) Settings(ctx *fiber.Ctx) error {
	res, err := c.settingsService.Get(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *workspaceController) Analytics(ctx *fiber.Ctx) error {
	res, err := c.analyticsService.Snapshot(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analytics", res))
}

func (c *workspaceController) Automations(ctx *fiber.Ctx) error {
	res, err := c.automationService.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list automations", res))
}
