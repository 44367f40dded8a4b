// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
)

// HTTPClientTimeout covers the slowest server-side operation, an attach that waits out device discovery.
const HTTPClientTimeout = time.Second * 300

func InvokeRESTAPI(method, url string, requestBody []byte) (*http.Response, []byte, error) {
	var request *http.Request
	var err error

	if requestBody == nil {
		request, err = http.NewRequest(method, url, nil)
	} else {
		request, err = http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	}
	if err != nil {
		return nil, nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", config.OrchestratorClientName+"/"+config.OrchestratorVersion)

	LogHTTPRequest(request, requestBody)

	client := &http.Client{Timeout: HTTPClientTimeout}
	response, err := client.Do(request)
	if err != nil {
		err = fmt.Errorf("error communicating with %s REST API; %v", config.OrchestratorName, err)
		return nil, nil, err
	}

	var responseBody []byte

	if response != nil {
		defer func() { _ = response.Body.Close() }()
		responseBody, err = io.ReadAll(response.Body)
		if err != nil {
			return response, responseBody, fmt.Errorf("error reading response body; %v", err)
		}
	}

	LogHTTPResponse(response, responseBody)

	return response, responseBody, err
}

func LogHTTPRequest(request *http.Request, requestBody []byte) {
	Log().Debug("--------------------------------------------------------------------------------")
	Log().Debugf("Request Method: %s", request.Method)
	Log().Debugf("Request URL: %v", request.URL)
	Log().Debugf("Request headers: %v", request.Header)
	if requestBody == nil {
		requestBody = []byte{}
	}
	Log().Debugf("Request body: %s", string(requestBody))
	Log().Debug("................................................................................")
}

func LogHTTPResponse(response *http.Response, responseBody []byte) {
	if response != nil {
		Log().Debugf("Response status: %s", response.Status)
		Log().Debugf("Response headers: %v", response.Header)
	}

	if responseBody != nil {
		Log().Debugf("Response body: %s", string(responseBody))
	}

	Log().Debug("================================================================================")
}
