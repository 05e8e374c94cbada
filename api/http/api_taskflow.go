// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/identity"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/Kennedy01-crypto/taskflow-express-api/app"
	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/metrics"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
	"github.com/Kennedy01-crypto/taskflow-express-api/utils"
)

const (
	uriHealth   = "/api/v1/health"
	uriDBStatus = "/api/v1/db-status"

	uriTasks          = "/api/v1/tasks"
	uriTasksBulk      = "/api/v1/tasks/bulk"
	uriTasksCompleted = "/api/v1/tasks/completed"
	uriTasksPending   = "/api/v1/tasks/pending"
	uriTask           = "/api/v1/tasks/:id"
	uriTaskComplete   = "/api/v1/tasks/:id/complete"

	uriCategories = "/api/v1/categories"
	uriCategory   = "/api/v1/categories/:id"

	uriRegister = "/api/v1/auth/register"
	uriLogin    = "/api/v1/auth/login"
	uriUsers    = "/api/v1/users"
	uriUsersMe  = "/api/v1/users/me"
	uriUser     = "/api/v1/users/:id"

	uriFallback = "/*path"
)

const (
	collectionTasks      = "tasks"
	collectionCategories = "categories"
	collectionUsers      = "users"

	queryParamCompleted = "completed"

	msgDBActive       = "MongoDB connection is active."
	msgUserRegistered = "User registered successfully"
	msgBadBody        = "Invalid request body"
)

var errBadBody = apperror.New(http.StatusBadRequest, msgBadBody)

type taskflowHandlers struct {
	app    app.TaskflowApp
	errors ErrorResponder
}

// return an ApiHandler for the taskflow app
func NewTaskflowApiHandlers(a app.TaskflowApp, mode apperror.Mode) ApiHandler {
	return &taskflowHandlers{
		app:    a,
		errors: ErrorResponder{Mode: mode},
	}
}

func (h *taskflowHandlers) GetApp() (rest.App, error) {
	// static segments go before the :id routes; the first defined route
	// matching a path wins
	routes := []*rest.Route{
		rest.Get(uriHealth, h.HealthCheckHandler),
		rest.Get(uriDBStatus, h.DBStatusHandler),

		rest.Get(uriTasks, h.optionalUser(h.ListTasksHandler)),
		rest.Post(uriTasks, h.optionalUser(h.CreateTaskHandler)),
		rest.Post(uriTasksBulk, h.optionalUser(h.CreateTasksHandler)),
		rest.Get(uriTasksCompleted, h.optionalUser(h.listTasksByCompletion(true))),
		rest.Get(uriTasksPending, h.optionalUser(h.listTasksByCompletion(false))),
		rest.Get(uriTask, h.optionalUser(h.GetTaskHandler)),
		rest.Put(uriTask, h.optionalUser(h.UpdateTaskHandler)),
		rest.Patch(uriTask, h.optionalUser(h.UpdateTaskHandler)),
		rest.Delete(uriTask, h.optionalUser(h.DeleteTaskHandler)),
		rest.Patch(uriTaskComplete, h.optionalUser(h.CompleteTaskHandler)),

		rest.Get(uriCategories, h.optionalUser(h.ListCategoriesHandler)),
		rest.Post(uriCategories, h.optionalUser(h.CreateCategoryHandler)),
		rest.Get(uriCategory, h.optionalUser(h.GetCategoryHandler)),
		rest.Put(uriCategory, h.optionalUser(h.UpdateCategoryHandler)),
		rest.Patch(uriCategory, h.optionalUser(h.UpdateCategoryHandler)),
		rest.Delete(uriCategory, h.optionalUser(h.DeleteCategoryHandler)),

		rest.Post(uriRegister, h.RegisterHandler),
		rest.Post(uriLogin, h.LoginHandler),
		rest.Get(uriUsers, h.optionalUser(h.ListUsersHandler)),
		rest.Get(uriUsersMe, h.requireUser(h.GetCurrentUserHandler)),
		rest.Get(uriUser, h.optionalUser(h.GetUserHandler)),
		rest.Delete(uriUser, h.optionalUser(h.DeleteUserHandler)),
	}

	// augment routes with OPTIONS handler
	routes = AutogenOptionsRoutes(routes, AllowHeaderOptionsGenerator)

	// anything left unmatched, whatever the method, gets the regular error
	// envelope instead of the router's 405
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost,
		http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodOptions, http.MethodConnect, http.MethodTrace,
	} {
		routes = append(routes, &rest.Route{
			HttpMethod: method,
			PathExp:    uriFallback,
			Func:       h.errors.NotFound,
		})
	}

	router, err := rest.MakeRouter(metrics.TagRoutes(routes)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	return router, nil
}

// decodeBody fills v from the JSON payload. An empty body leaves v as is.
func decodeBody(r *rest.Request, v interface{}) error {
	err := r.DecodeJsonPayload(v)
	if err == nil || err == rest.ErrJsonPayloadEmpty {
		return nil
	}
	return errors.Wrap(errBadBody, err.Error())
}

func (h *taskflowHandlers) HealthCheckHandler(w rest.ResponseWriter, r *rest.Request) {
	if err := h.app.HealthCheck(r.Context()); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *taskflowHandlers) DBStatusHandler(w rest.ResponseWriter, r *rest.Request) {
	status, err := h.app.DatabaseStatus(r.Context())
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	_ = w.WriteJson(SuccessResponse{
		Success: true,
		Message: msgDBActive,
		Data:    status,
	})
}

func (h *taskflowHandlers) ListTasksHandler(w rest.ResponseWriter, r *rest.Request) {
	h.listTasks(w, r, r.URL.Query())
}

// listTasksByCompletion lists tasks with the completion flag forced,
// whatever the client asked for.
func (h *taskflowHandlers) listTasksByCompletion(completed bool) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		params := url.Values{}
		for k, v := range r.URL.Query() {
			if k == queryParamCompleted || strings.HasPrefix(k, queryParamCompleted+"[") {
				continue
			}
			params[k] = v
		}
		if completed {
			params.Set(queryParamCompleted, "true")
		} else {
			params.Set(queryParamCompleted, "false")
		}
		h.listTasks(w, r, params)
	}
}

func (h *taskflowHandlers) listTasks(w rest.ResponseWriter, r *rest.Request, params url.Values) {
	ctx := r.Context()

	q := store.BuildQuery(params)
	log.FromContext(ctx).Debugf("task listing filter: %v", q.Filter)

	tasks, total, err := h.app.ListTasks(ctx, q)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	writeListing(w, r, collectionTasks, tasks, total, q.Page)
}

func (h *taskflowHandlers) GetTaskHandler(w rest.ResponseWriter, r *rest.Request) {
	task, err := h.app.GetTask(r.Context(), r.PathParam("id"))
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, task)
}

func (h *taskflowHandlers) CreateTaskHandler(w rest.ResponseWriter, r *rest.Request) {
	var in model.TaskInput
	if err := decodeBody(r, &in); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	task, err := h.app.CreateTask(r.Context(), &in)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.Header().Add("Location",
		utils.BuildURL(r, uriTask, map[string]string{":id": task.ID.Hex()}).String())
	success(w, http.StatusCreated, task)
}

type bulkTasks struct {
	Tasks []*model.TaskInput `json:"tasks"`
}

func (h *taskflowHandlers) CreateTasksHandler(w rest.ResponseWriter, r *rest.Request) {
	var in bulkTasks
	if err := decodeBody(r, &in); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	tasks, err := h.app.CreateTasks(r.Context(), in.Tasks)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	results := len(tasks)
	w.WriteHeader(http.StatusCreated)
	_ = w.WriteJson(SuccessResponse{
		Success: true,
		Results: &results,
		Data:    map[string][]*model.Task{collectionTasks: tasks},
	})
}

func (h *taskflowHandlers) UpdateTaskHandler(w rest.ResponseWriter, r *rest.Request) {
	var in model.TaskInput
	if err := decodeBody(r, &in); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	task, err := h.app.UpdateTask(r.Context(), r.PathParam("id"), &in)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, task)
}

func (h *taskflowHandlers) CompleteTaskHandler(w rest.ResponseWriter, r *rest.Request) {
	task, err := h.app.CompleteTask(r.Context(), r.PathParam("id"))
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, task)
}

func (h *taskflowHandlers) DeleteTaskHandler(w rest.ResponseWriter, r *rest.Request) {
	if err := h.app.DeleteTask(r.Context(), r.PathParam("id")); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *taskflowHandlers) ListCategoriesHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	q := store.BuildQuery(r.URL.Query())
	categories, total, err := h.app.ListCategories(ctx, q)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	writeListing(w, r, collectionCategories, categories, total, q.Page)
}

func (h *taskflowHandlers) GetCategoryHandler(w rest.ResponseWriter, r *rest.Request) {
	category, err := h.app.GetCategory(r.Context(), r.PathParam("id"))
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, category)
}

func (h *taskflowHandlers) CreateCategoryHandler(w rest.ResponseWriter, r *rest.Request) {
	var in model.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	category, err := h.app.CreateCategory(r.Context(), &in)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.Header().Add("Location",
		utils.BuildURL(r, uriCategory, map[string]string{":id": category.ID.Hex()}).String())
	success(w, http.StatusCreated, category)
}

func (h *taskflowHandlers) UpdateCategoryHandler(w rest.ResponseWriter, r *rest.Request) {
	var in model.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	category, err := h.app.UpdateCategory(r.Context(), r.PathParam("id"), &in)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, category)
}

func (h *taskflowHandlers) DeleteCategoryHandler(w rest.ResponseWriter, r *rest.Request) {
	if err := h.app.DeleteCategory(r.Context(), r.PathParam("id")); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type registeredUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func (h *taskflowHandlers) RegisterHandler(w rest.ResponseWriter, r *rest.Request) {
	var creds model.UserCredentials
	if err := decodeBody(r, &creds); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	user, err := h.app.Register(r.Context(), creds)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = w.WriteJson(StatusResponse{
		Status:  apperror.StatusSuccess,
		Message: msgUserRegistered,
		Data: registeredUser{
			UserID: user.ID.Hex(),
			Email:  user.Email,
		},
	})
}

func (h *taskflowHandlers) LoginHandler(w rest.ResponseWriter, r *rest.Request) {
	var creds model.UserCredentials
	if err := decodeBody(r, &creds); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	token, user, err := h.app.Login(r.Context(), creds)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	_ = w.WriteJson(StatusResponse{
		Status: apperror.StatusSuccess,
		Token:  token,
		Data:   map[string]*model.User{"user": user},
	})
}

func (h *taskflowHandlers) ListUsersHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	q := store.BuildQuery(r.URL.Query())
	users, total, err := h.app.ListUsers(ctx, q)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	writeListing(w, r, collectionUsers, users, total, q.Page)
}

func (h *taskflowHandlers) GetUserHandler(w rest.ResponseWriter, r *rest.Request) {
	user, err := h.app.GetUser(r.Context(), r.PathParam("id"))
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, user)
}

func (h *taskflowHandlers) GetCurrentUserHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	id := identity.FromContext(ctx)
	user, err := h.app.GetUser(ctx, id.Subject)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	success(w, http.StatusOK, user)
}

func (h *taskflowHandlers) DeleteUserHandler(w rest.ResponseWriter, r *rest.Request) {
	if err := h.app.DeleteUser(r.Context(), r.PathParam("id")); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
