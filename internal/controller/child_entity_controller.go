package controller

import (
	"fmt"
	"strconv"

	"sample-be/internal/apperror"
	"sample-be/internal/constant"
	"sample-be/internal/dto"
	"sample-be/internal/pkg/serverutils"
	"sample-be/internal/resource"
	"sample-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChildEntityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	PartialUpdate(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type childEntityController struct {
	service   service.IChildEntityService
	validator *resource.Validator
	auth      fiber.Handler
	appName   string
}

func NewChildEntityController(service service.IChildEntityService, auth fiber.Handler, appName string) IChildEntityController {
	return &childEntityController{
		service:   service,
		validator: resource.NewValidator(constant.ChildEntityName, service),
		auth:      auth,
		appName:   appName,
	}
}

func (c *childEntityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/child-entities")
	h.Use(c.auth)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id", c.PartialUpdate)
	h.Delete(":id", c.Delete)
}

func (c *childEntityController) Create(ctx *fiber.Ctx) error {
	var req dto.ChildEntityDTO
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest(err)
	}

	if err := c.validator.ValidateCreate(req.Id); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(constant.ChildEntityName, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(*res.Id, 10)
	ctx.Location(fmt.Sprintf("/api/child-entities/%s", id))
	serverutils.SetEntityCreationAlert(ctx, c.appName, constant.ChildEntityName, id)
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *childEntityController) Update(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	var req dto.ChildEntityDTO
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest(err)
	}

	if err := c.validator.ValidateUpdate(ctx.UserContext(), id, req.Id); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(constant.ChildEntityName, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	serverutils.SetEntityUpdateAlert(ctx, c.appName, constant.ChildEntityName, ctx.Params("id"))
	return ctx.JSON(res)
}

func (c *childEntityController) PartialUpdate(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}
	if err := requireMergePatch(ctx); err != nil {
		return err
	}

	patch, err := dto.DecodeChildEntityPatch(ctx.Body())
	if err != nil {
		return serverutils.BadRequest(err)
	}

	if err := c.validator.ValidateUpdate(ctx.UserContext(), id, patch.Id); err != nil {
		return err
	}

	res, err := c.service.PartialUpdate(ctx.UserContext(), patch)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.Missing(constant.ChildEntityName)
	}

	serverutils.SetEntityUpdateAlert(ctx, c.appName, constant.ChildEntityName, ctx.Params("id"))
	return ctx.JSON(res)
}

// GetAll lists children. ?eagerload=true joins owner and parent,
// ?mine=true keeps only the caller's children.
func (c *childEntityController) GetAll(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePageRequest(ctx, constant.ChildEntityName)
	if err != nil {
		return err
	}

	filter := service.ChildEntityFilter{
		EagerLoad: ctx.QueryBool("eagerload", false),
	}
	if ctx.QueryBool("mine", false) {
		filter.OwnerId = serverutils.GetUserId(ctx)
	}

	res, err := c.service.FindAll(ctx.UserContext(), page, filter)
	if err != nil {
		return err
	}

	serverutils.SetPaginationHeaders(ctx, res)
	return ctx.JSON(res.Content)
}

func (c *childEntityController) Show(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.service.FindOne(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.Missing(constant.ChildEntityName)
	}
	return ctx.JSON(res)
}

func (c *childEntityController) Delete(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	serverutils.SetEntityDeletionAlert(ctx, c.appName, constant.ChildEntityName, ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
