// Package web is the form boundary in front of the dispatchers. Field
// validation lives here; the dispatchers themselves stay pass-through.
package web

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labelship/zpldispatch/internal/dispatch"
	"github.com/labelship/zpldispatch/internal/spool"
	"github.com/labelship/zpldispatch/internal/zpl"
)

// LocalPrintForm is a submission for the spooler-backed dispatcher.
type LocalPrintForm struct {
	ServiceName  string `form:"serviceName" binding:"required"`
	PrintCommand string `form:"printCommand" binding:"required"`
	Charset      string `form:"charset"`
}

// RemotePrintForm is a submission for the socket dispatcher.
type RemotePrintForm struct {
	HostName     string `form:"hostName" binding:"required"`
	BoundPort    int    `form:"boundPort" binding:"required,min=1,max=65535"`
	PrintCommand string `form:"printCommand" binding:"required"`
	Charset      string `form:"charset"`
}

// Server wires the two dispatchers behind the printer forms and publishes a
// live feed of dispatch attempts.
type Server struct {
	network  *dispatch.Network
	local    *spool.Dispatcher
	registry spool.Registry
	sample   string
	events   *Hub
}

// NewServer builds a server around the given socket dispatcher and service
// registry. sample prefills the command field of both forms.
func NewServer(network *dispatch.Network, registry spool.Registry, sample string) *Server {
	return &Server{
		network:  network,
		local:    spool.NewDispatcher(registry),
		registry: registry,
		sample:   sample,
		events:   NewHub(),
	}
}

// Router builds the gin engine with the form templates loaded from
// templatesDir.
func (s *Server) Router(templatesDir string) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(filepath.Join(templatesDir, "*.html"))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/printers/local")
	})

	printers := router.Group("/printers")
	{
		printers.GET("/local", s.showLocalForm)
		printers.POST("/local", s.handleLocalPrint)
		printers.GET("/remote", s.showRemoteForm)
		printers.POST("/remote", s.handleRemotePrint)
		printers.GET("/events", s.events.Serve)
	}

	return router
}

func (s *Server) serviceNames() []string {
	names, err := spool.Names(s.registry)
	if err != nil {
		log.Printf("[web] Listing print services: %v", err)
		return nil
	}
	return names
}

func (s *Server) renderLocal(c *gin.Context, form LocalPrintForm, errMsg string) {
	if form.PrintCommand == "" {
		form.PrintCommand = s.sample
	}
	c.HTML(http.StatusOK, "local-print-form.html", gin.H{
		"serviceNames": s.serviceNames(),
		"charsets":     zpl.Charsets(),
		"form":         form,
		"error":        errMsg,
	})
}

func (s *Server) renderRemote(c *gin.Context, form RemotePrintForm, errMsg string) {
	if form.HostName == "" && form.BoundPort == 0 {
		form.HostName = "127.0.0.1"
		form.BoundPort = 9100
	}
	if form.PrintCommand == "" {
		form.PrintCommand = s.sample
	}
	c.HTML(http.StatusOK, "remote-print-form.html", gin.H{
		"charsets": zpl.Charsets(),
		"form":     form,
		"error":    errMsg,
	})
}

func (s *Server) showLocalForm(c *gin.Context) {
	s.renderLocal(c, LocalPrintForm{}, "")
}

func (s *Server) showRemoteForm(c *gin.Context) {
	s.renderRemote(c, RemotePrintForm{}, "")
}

func (s *Server) handleLocalPrint(c *gin.Context) {
	var form LocalPrintForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderLocal(c, form, "Service name and print command are required.")
		return
	}

	command, err := zpl.Encode(form.PrintCommand, zpl.Charset(form.Charset))
	if err != nil {
		s.renderLocal(c, form, "Cannot encode the command: "+err.Error())
		return
	}

	jobID := uuid.New().String()
	log.Printf("[job %s] Local print via %q (%d bytes)", jobID, form.ServiceName, len(command))

	if err := s.local.Dispatch(form.ServiceName, command); err != nil {
		log.Printf("[job %s] Local print failed: %v", jobID, err)
		s.events.Publish(Event{JobID: jobID, Transport: TransportLocal, Target: form.ServiceName, Bytes: len(command), Error: err.Error()})
		s.renderLocal(c, form, resolutionMessage(err))
		return
	}

	s.events.Publish(Event{JobID: jobID, Transport: TransportLocal, Target: form.ServiceName, Bytes: len(command), OK: true})
	c.Redirect(http.StatusFound, "/printers/local")
}

func (s *Server) handleRemotePrint(c *gin.Context) {
	var form RemotePrintForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderRemote(c, form, "Host name, a port between 1 and 65535 and a print command are required.")
		return
	}

	command, err := zpl.Encode(form.PrintCommand, zpl.Charset(form.Charset))
	if err != nil {
		s.renderRemote(c, form, "Cannot encode the command: "+err.Error())
		return
	}

	endpoint := dispatch.Endpoint{Host: form.HostName, Port: form.BoundPort}
	jobID := uuid.New().String()
	log.Printf("[job %s] Remote print to %s (%d bytes)", jobID, endpoint.Address(), len(command))

	if err := s.network.Dispatch(endpoint, command); err != nil {
		log.Printf("[job %s] Remote print failed: %v", jobID, err)
		s.events.Publish(Event{JobID: jobID, Transport: TransportRemote, Target: endpoint.Address(), Bytes: len(command), Error: err.Error()})
		s.renderRemote(c, form, "Delivery failed: "+err.Error())
		return
	}

	s.events.Publish(Event{JobID: jobID, Transport: TransportRemote, Target: endpoint.Address(), Bytes: len(command), OK: true})
	c.Redirect(http.StatusFound, "/printers/remote")
}

func resolutionMessage(err error) string {
	switch {
	case errors.Is(err, spool.ErrNotFound):
		return "No print service with that name is registered."
	case errors.Is(err, spool.ErrAmbiguous):
		return "More than one print service matches that name."
	default:
		return "Printing failed: " + err.Error()
	}
}
