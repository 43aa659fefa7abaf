package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LoggingWrapper adapts a plain handler that reports its own error. Each
// request gets a fresh LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware attaches a LogData and a request id to every request passing
// through next and logs one line when the response is written.
func Middleware(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			if id, err := uuid.NewV4(); err == nil {
				requestID = id.String()
			}
		}
		w.Header().Set(RequestIDHeader, requestID)

		logData := NewLogData(log)
		logData.AddData("requestID", requestID)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("durationMs")
		next.ServeHTTP(recorder, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.AddData("status", recorder.status)
		entry := logData.Log()
		switch {
		case recorder.status >= http.StatusInternalServerError:
			entry.Error("Handler.Request.Error")
		case recorder.status >= http.StatusBadRequest:
			entry.Warn("Handler.Request.Rejected")
		default:
			entry.Info("Handler.Request.Complete")
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
