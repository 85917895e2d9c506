package http

import (
	"context"
	"encoding/json"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/model"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type TransactionHttp struct {
	Service  contract.TransactionService
	Validate *validator.Validate
}

func RegisterTransactionHttp(
	mux *http.ServeMux,
	service contract.TransactionService,
	validate *validator.Validate,
	auth func(http.Handler) http.Handler,
) *TransactionHttp {
	in := &TransactionHttp{
		Service:  service,
		Validate: validate,
	}

	organizer := func(h http.HandlerFunc) http.Handler {
		return auth(OrganizerOnly(h))
	}

	mux.Handle("POST /api/events/{eventId}/transactions", auth(http.HandlerFunc(in.create)))
	mux.Handle("GET /api/me/transactions", auth(http.HandlerFunc(in.listMine)))
	mux.Handle("GET /api/organizer/transactions", organizer(in.listOrganizer))
	mux.Handle("GET /api/transactions/{id}", auth(http.HandlerFunc(in.get)))
	mux.Handle("PUT /api/transactions/{id}/payment-proof", auth(http.HandlerFunc(in.uploadPaymentProof)))
	mux.Handle("PUT /api/transactions/{id}/cancel", auth(http.HandlerFunc(in.cancel)))
	mux.Handle("PUT /api/transactions/{id}/confirm", organizer(in.confirm))
	mux.Handle("PUT /api/transactions/{id}/reject", organizer(in.reject))

	return in
}

func (in TransactionHttp) create(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventId")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "TransactionHttp.create")
	defer span.End()

	actor, _ := actorFromContext(ctx)
	res, err := in.Service.CreateTransaction(ctx, actor.UserID, eventID, req)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, res)
}

func (in TransactionHttp) uploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UploadPaymentProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "TransactionHttp.uploadPaymentProof")
	defer span.End()

	actor, _ := actorFromContext(ctx)
	res, err := in.Service.UploadPaymentProof(ctx, id, actor.UserID, req.PaymentProof)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, res)
}

func (in TransactionHttp) cancel(w http.ResponseWriter, r *http.Request) {
	in.byID(w, r, "TransactionHttp.cancel", in.Service.CancelTransaction)
}

func (in TransactionHttp) confirm(w http.ResponseWriter, r *http.Request) {
	in.byID(w, r, "TransactionHttp.confirm", in.Service.ConfirmTransaction)
}

func (in TransactionHttp) reject(w http.ResponseWriter, r *http.Request) {
	in.byID(w, r, "TransactionHttp.reject", in.Service.RejectTransaction)
}

func (in TransactionHttp) get(w http.ResponseWriter, r *http.Request) {
	in.byID(w, r, "TransactionHttp.get", in.Service.GetTransactionByID)
}

// byID serves the bodiless /api/transactions/{id} routes that act as the caller.
func (in TransactionHttp) byID(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	op func(ctx context.Context, transactionID, userID int64) (model.TransactionResponse, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), spanName)
	defer span.End()

	actor, _ := actorFromContext(ctx)
	res, err := op(ctx, id, actor.UserID)
	if err != nil {
		slog.DebugContext(ctx, "transaction request failed", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, res)
}

func (in TransactionHttp) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TransactionHttp.listMine")
	defer span.End()

	actor, _ := actorFromContext(ctx)
	res, err := in.Service.GetMyTransactions(ctx, actor.UserID)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.ListTransactionsResponse{Transactions: res})
}

func (in TransactionHttp) listOrganizer(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TransactionHttp.listOrganizer")
	defer span.End()

	actor, _ := actorFromContext(ctx)
	res, err := in.Service.GetOrganizerTransactions(ctx, actor.UserID)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.ListTransactionsResponse{Transactions: res})
}
