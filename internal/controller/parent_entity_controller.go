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

type IParentEntityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	PartialUpdate(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	LinkChild(ctx *fiber.Ctx) error
}

type parentEntityController struct {
	service             service.IParentEntityService
	relationshipService service.IRelationshipService
	validator           *resource.Validator
	childValidator      *resource.Validator
	auth                fiber.Handler
	appName             string
}

func NewParentEntityController(
	service service.IParentEntityService,
	relationshipService service.IRelationshipService,
	auth fiber.Handler,
	appName string,
) IParentEntityController {
	return &parentEntityController{
		service:             service,
		relationshipService: relationshipService,
		validator:           resource.NewValidator(constant.ParentEntityName, service),
		childValidator:      resource.NewValidator(constant.ChildEntityName, nil),
		auth:                auth,
		appName:             appName,
	}
}

func (c *parentEntityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/parent-entities")
	h.Use(c.auth)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id", c.PartialUpdate)
	h.Delete(":id", c.Delete)
	h.Put(":id/children/:childId", c.LinkChild)
}

func (c *parentEntityController) Create(ctx *fiber.Ctx) error {
	var req dto.ParentEntityDTO
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest(err)
	}

	if err := c.validator.ValidateCreate(req.Id); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(constant.ParentEntityName, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(*res.Id, 10)
	ctx.Location(fmt.Sprintf("/api/parent-entities/%s", id))
	serverutils.SetEntityCreationAlert(ctx, c.appName, constant.ParentEntityName, id)
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *parentEntityController) Update(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	var req dto.ParentEntityDTO
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest(err)
	}

	if err := c.validator.ValidateUpdate(ctx.UserContext(), id, req.Id); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(constant.ParentEntityName, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	serverutils.SetEntityUpdateAlert(ctx, c.appName, constant.ParentEntityName, ctx.Params("id"))
	return ctx.JSON(res)
}

func (c *parentEntityController) PartialUpdate(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}
	if err := requireMergePatch(ctx); err != nil {
		return err
	}

	patch, err := dto.DecodeParentEntityPatch(ctx.Body())
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
		return apperror.Missing(constant.ParentEntityName)
	}

	serverutils.SetEntityUpdateAlert(ctx, c.appName, constant.ParentEntityName, ctx.Params("id"))
	return ctx.JSON(res)
}

func (c *parentEntityController) GetAll(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePageRequest(ctx, constant.ParentEntityName)
	if err != nil {
		return err
	}

	res, err := c.service.FindAll(ctx.UserContext(), page)
	if err != nil {
		return err
	}

	serverutils.SetPaginationHeaders(ctx, res)
	return ctx.JSON(res.Content)
}

func (c *parentEntityController) Show(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.service.FindOne(ctx.UserContext(), id, ctx.QueryBool("eagerload", false))
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.Missing(constant.ParentEntityName)
	}
	return ctx.JSON(res)
}

func (c *parentEntityController) Delete(ctx *fiber.Ctx) error {
	id, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	serverutils.SetEntityDeletionAlert(ctx, c.appName, constant.ParentEntityName, ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

// LinkChild moves an existing child under this parent.
func (c *parentEntityController) LinkChild(ctx *fiber.Ctx) error {
	parentId, err := c.validator.ParseId(ctx.Params("id"))
	if err != nil {
		return err
	}
	childId, err := c.childValidator.ParseId(ctx.Params("childId"))
	if err != nil {
		return err
	}

	res, err := c.relationshipService.LinkChild(ctx.UserContext(), parentId, childId)
	if err != nil {
		return err
	}

	serverutils.SetEntityUpdateAlert(ctx, c.appName, constant.ChildEntityName, ctx.Params("childId"))
	return ctx.JSON(res)
}
