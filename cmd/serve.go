package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/tayjaybabee/MIDIDiff/constants"
	"github.com/tayjaybabee/MIDIDiff/extract"
	"github.com/tayjaybabee/MIDIDiff/midi"
	"github.com/tayjaybabee/MIDIDiff/model"
	"github.com/tayjaybabee/MIDIDiff/noteset"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the diff engine over HTTP",
	Long:  `Serves the diff engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleDiff diffs two uploaded midi files (multipart fields file_a
// and file_b) and responds with the counts and the differing notes.
func HandleDiff(w http.ResponseWriter, r *http.Request) {
	uploadA, _, err := r.FormFile("file_a")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing upload: file_a")
		return
	}
	defer uploadA.Close()

	uploadB, _, err := r.FormFile("file_b")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing upload: file_b")
		return
	}
	defer uploadB.Close()

	midA, err := midi.ReadMidi(uploadA)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Could not parse file_a: "+err.Error())
		return
	}
	midB, err := midi.ReadMidi(uploadB)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Could not parse file_b: "+err.Error())
		return
	}

	res := noteset.Diff(extract.Extract(midA), extract.Extract(midB))

	resp := model.DiffResponse{
		OnlyInA: res.OnlyInA,
		OnlyInB: res.OnlyInB,
		Notes:   make([]model.NoteJSON, 0, len(res.Notes)),
	}
	for _, n := range res.Notes {
		resp.Notes = append(resp.Notes, model.NoteJSON{
			Pitch:    n.Pitch,
			Start:    n.Start,
			Duration: n.Duration,
			Velocity: n.Velocity,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/diff", HandleDiff).Methods("POST")
	handler := cors.Default().Handler(router)

	addr := constants.GetServeAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
