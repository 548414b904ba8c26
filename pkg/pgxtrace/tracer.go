package pgxtrace

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/JailtonJunior94/querytrack/pkg/requestlog"
	"github.com/jackc/pgx/v5"
)

// Tracer implements pgx.QueryTracer, turning each query completion into a
// request log observation. Attach it to a connection config:
//
//	cfg.Tracer = pgxtrace.New(logger)
type Tracer struct {
	logger *requestlog.RequestLogger
}

// New creates a tracer feeding completions into logger.
func New(logger *requestlog.RequestLogger) *Tracer {
	return &Tracer{logger: logger}
}

type ctxKey struct{}

type queryStart struct {
	sql     string
	args    []any
	startAt time.Time
}

// TraceQueryStart stashes the query and its start time in the context.
func (t *Tracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, ctxKey{}, &queryStart{
		sql:     data.SQL,
		args:    data.Args,
		startAt: time.Now(),
	})
}

// TraceQueryEnd emits the completion for the query started in the same
// context. Ends without a matching start are ignored.
func (t *Tracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	started, ok := ctx.Value(ctxKey{}).(*queryStart)
	if !ok {
		return
	}

	request := &queryRequest{sql: started.sql, args: started.args}
	node := nodeFromConn(conn)
	latency := time.Since(started.startAt)

	if data.Err != nil {
		t.logger.Observe(ctx, requestlog.Error(request, node, latency, data.Err))
		return
	}
	t.logger.Observe(ctx, requestlog.Success(request, node, latency))
}

// queryRequest adapts a traced query to the requestlog.Request interface.
type queryRequest struct {
	sql  string
	args []any
}

func (r *queryRequest) Query() string {
	return r.sql
}

func (r *queryRequest) Values() []string {
	values := make([]string, len(r.args))
	for i, arg := range r.args {
		values[i] = fmt.Sprintf("%v", arg)
	}
	return values
}

// serverNode adapts a connection target to the requestlog.Node interface.
type serverNode struct {
	addr string
}

func (n serverNode) Address() string {
	return n.addr
}

func nodeFromConn(conn *pgx.Conn) requestlog.Node {
	if conn == nil {
		return nil
	}
	cfg := conn.Config()
	return serverNode{addr: net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))}
}
