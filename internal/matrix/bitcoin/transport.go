package bitcoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/go-socks/socks"
	"github.com/go-resty/resty/v2"
)

// RPCEndpoint describes how to reach the node.
type RPCEndpoint struct {
	URL      string
	User     string
	Password string
	UseProxy bool
	ProxyURL string
}

// endpointSettings is an RPCEndpoint resolved into what the HTTP client needs.
type endpointSettings struct {
	URL      string
	User     string
	Password string
	Proxy    *socks.Proxy
}

func (e RPCEndpoint) resolve() (endpointSettings, error) {
	parsed, err := url.Parse(e.URL)
	if err != nil {
		return endpointSettings{}, fmt.Errorf("parse rpc url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return endpointSettings{}, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return endpointSettings{}, errors.New("rpc url missing host")
	}

	s := endpointSettings{User: e.User, Password: e.Password}
	if parsed.User != nil && s.User == "" {
		s.User = parsed.User.Username()
		s.Password, _ = parsed.User.Password()
	}
	parsed.User = nil
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawPath = ""
	s.URL = parsed.String()

	if e.UseProxy {
		host, user, pass, err := parseSocksProxy(e.ProxyURL)
		if err != nil {
			return endpointSettings{}, err
		}
		s.Proxy = &socks.Proxy{Addr: host, Username: user, Password: pass}
	}
	return s, nil
}

// parseSocksProxy accepts socks5://, socks5h:// or a bare host:port.
func parseSocksProxy(raw string) (host, user, pass string, err error) {
	if raw == "" {
		return "", "", "", errors.New("proxy enabled but proxy address is empty")
	}
	if !strings.Contains(raw, "://") {
		return raw, "", "", nil
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", "", fmt.Errorf("parse proxy url: %w", err)
	}
	switch parsed.Scheme {
	case "socks5", "socks5h", "socks":
	default:
		return "", "", "", fmt.Errorf("proxy scheme %q not supported, use socks5", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", "", "", errors.New("proxy url missing host")
	}
	if parsed.User != nil {
		user = parsed.User.Username()
		pass, _ = parsed.User.Password()
	}
	return parsed.Host, user, pass, nil
}

// HTTPTransport posts JSON-RPC 1.0 requests to the node. Every call is a
// single HTTP attempt bound to the caller's context.
type HTTPTransport struct {
	client *resty.Client
	url    string
	proxy  string
	nextID atomic.Uint64
}

// NewHTTPTransport builds a transport for the endpoint. Name resolution of the
// node host happens at the SOCKS proxy when one is configured.
func NewHTTPTransport(e RPCEndpoint) (*HTTPTransport, error) {
	s, err := e.resolve()
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	var proxyAddr string
	if s.Proxy != nil {
		proxy := s.Proxy
		proxyAddr = proxy.Addr
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return proxy.Dial(network, addr)
		}
	}

	client := resty.NewWithClient(&http.Client{Transport: transport}).
		SetRetryCount(0).
		SetDisableWarn(true).
		SetHeader("Content-Type", "application/json")
	if s.User != "" || s.Password != "" {
		client.SetBasicAuth(s.User, s.Password)
	}

	return &HTTPTransport{client: client, url: s.URL, proxy: proxyAddr}, nil
}

// Proxy returns the SOCKS proxy address, empty when calls go direct.
func (t *HTTPTransport) Proxy() string {
	return t.proxy
}

// Request sends one call and returns its result. A JSON-RPC error object is
// returned as *btcjson.RPCError whatever the HTTP status.
func (t *HTTPTransport) Request(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	if params == nil {
		params = []json.RawMessage{}
	}
	req := &btcjson.Request{
		Jsonrpc: btcjson.RpcVersion1,
		Method:  method,
		Params:  params,
		ID:      t.nextID.Add(1),
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(t.url)
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	return decodeReply(resp.StatusCode(), resp.Body())
}

func decodeReply(status int, body []byte) (json.RawMessage, error) {
	ok := status >= http.StatusOK && status < http.StatusMultipleChoices

	var reply btcjson.Response
	if err := json.Unmarshal(body, &reply); err != nil {
		if !ok {
			return nil, fmt.Errorf("http status %d", status)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if reply.Error != nil {
		return nil, reply.Error
	}
	if !ok {
		return nil, fmt.Errorf("http status %d", status)
	}
	return reply.Result, nil
}
