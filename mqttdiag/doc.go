// Package mqttdiag streams annealing diagnostics to an MQTT broker.
//
// Publisher implements anneal.Observer and anneal.Finisher. Iteration records
// go to {prefix}/{run}/iteration and the final result, retained, to
// {prefix}/{run}/result, both as JSON. The run segment is a random UUID
// unless set explicitly.
package mqttdiag
