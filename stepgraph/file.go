package stepgraph

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// File format for a precomputed ".fsg" step graph, read with the same
// fixed-record io.ReadFull idiom used for binary opening-book files
// elsewhere in this ecosystem:
//
//	magic      [4]byte  "FSG1"
//	version    uint32
//	typeLen    uint16
//	chartType  [typeLen]byte
//	nodeCount  uint32
//	linkCount  uint32
//	edgeCount  uint32
//	nodes      [nodeCount]nodeRecord  (10 bytes each)
//	links      [linkCount]linkRecord  (12 bytes each)
//	edges      [edgeCount]edgeRecord  (12 bytes each)
const (
	fileMagic   = "FSG1"
	fileVersion = uint32(1)
)

// LoadFile reads a precomputed step graph file.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(path, "opening file", err)
	}
	defer f.Close()

	g, err := readGraph(f)
	if err != nil {
		return nil, newLoadError(path, "decoding", err)
	}
	return g, nil
}

// SaveFile writes g to path in the ".fsg" binary format.
func SaveFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newLoadError(path, "creating file", err)
	}
	defer f.Close()

	if err := writeGraph(f, g); err != nil {
		return newLoadError(path, "encoding", err)
	}
	return nil
}

func readGraph(r io.Reader) (*Graph, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != fileMagic {
		return nil, fmt.Errorf("bad magic %q", magic[:])
	}

	var version uint32
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, err
	}
	if version != fileVersion {
		return nil, fmt.Errorf("unsupported version %d", version)
	}

	var typeLen uint16
	if err := binary.Read(r, binary.BigEndian, &typeLen); err != nil {
		return nil, err
	}
	typeBytes := make([]byte, typeLen)
	if _, err := io.ReadFull(r, typeBytes); err != nil {
		return nil, err
	}

	var counts [3]uint32
	if err := binary.Read(r, binary.BigEndian, &counts); err != nil {
		return nil, err
	}
	nodeCount, linkCount, edgeCount := counts[0], counts[1], counts[2]

	g := NewGraph(string(typeBytes))

	var nodeRec [10]byte
	for i := uint32(0); i < nodeCount; i++ {
		if _, err := io.ReadFull(r, nodeRec[:]); err != nil {
			return nil, err
		}
		state := BodyState{
			Portions: [2][2]int{
				{int(int16(binary.BigEndian.Uint16(nodeRec[0:2]))), int(int16(binary.BigEndian.Uint16(nodeRec[2:4])))},
				{int(int16(binary.BigEndian.Uint16(nodeRec[4:6]))), int(int16(binary.BigEndian.Uint16(nodeRec[6:8])))},
			},
			Crossed:  nodeRec[8] != 0,
			Inverted: nodeRec[9] != 0,
		}
		idx := g.AddNode(state)
		if uint32(idx) != i {
			return nil, fmt.Errorf("node %d decoded out of order (got index %d)", i, idx)
		}
	}

	var linkRec [12]byte
	for i := uint32(0); i < linkCount; i++ {
		if _, err := io.ReadFull(r, linkRec[:]); err != nil {
			return nil, err
		}
		var link GraphLink
		off := 0
		for f := 0; f < 2; f++ {
			for p := 0; p < 2; p++ {
				link.Cells[f][p] = LinkCell{
					Valid:      linkRec[off] != 0,
					StepType:   StepType(linkRec[off+1]),
					FootAction: FootAction(linkRec[off+2]),
				}
				off += 3
			}
		}
		idx := g.AddLink(link)
		if uint32(idx) != i {
			return nil, fmt.Errorf("link %d decoded out of order (got index %d)", i, idx)
		}
	}

	var edgeRec [12]byte
	for i := uint32(0); i < edgeCount; i++ {
		if _, err := io.ReadFull(r, edgeRec[:]); err != nil {
			return nil, err
		}
		from := binary.BigEndian.Uint32(edgeRec[0:4])
		linkIdx := binary.BigEndian.Uint32(edgeRec[4:8])
		to := binary.BigEndian.Uint32(edgeRec[8:12])
		g.AddEdge(int(from), int(linkIdx), int(to))
	}

	return g, nil
}

func writeGraph(w io.Writer, g *Graph) error {
	if _, err := w.Write([]byte(fileMagic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, fileVersion); err != nil {
		return err
	}
	typeBytes := []byte(g.ChartType)
	if err := binary.Write(w, binary.BigEndian, uint16(len(typeBytes))); err != nil {
		return err
	}
	if _, err := w.Write(typeBytes); err != nil {
		return err
	}
	counts := [3]uint32{uint32(len(g.Nodes)), uint32(len(g.Links)), uint32(len(g.Edges))}
	if err := binary.Write(w, binary.BigEndian, counts); err != nil {
		return err
	}

	for _, n := range g.Nodes {
		var rec [10]byte
		binary.BigEndian.PutUint16(rec[0:2], uint16(int16(n.Portions[0][0])))
		binary.BigEndian.PutUint16(rec[2:4], uint16(int16(n.Portions[0][1])))
		binary.BigEndian.PutUint16(rec[4:6], uint16(int16(n.Portions[1][0])))
		binary.BigEndian.PutUint16(rec[6:8], uint16(int16(n.Portions[1][1])))
		if n.Crossed {
			rec[8] = 1
		}
		if n.Inverted {
			rec[9] = 1
		}
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}

	for _, l := range g.Links {
		var rec [12]byte
		off := 0
		for f := 0; f < 2; f++ {
			for p := 0; p < 2; p++ {
				c := l.Cells[f][p]
				if c.Valid {
					rec[off] = 1
				}
				rec[off+1] = byte(c.StepType)
				rec[off+2] = byte(c.FootAction)
				off += 3
			}
		}
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}

	for _, e := range g.Edges {
		var rec [12]byte
		binary.BigEndian.PutUint32(rec[0:4], uint32(e.From))
		binary.BigEndian.PutUint32(rec[4:8], uint32(e.LinkIdx))
		binary.BigEndian.PutUint32(rec[8:12], uint32(e.To))
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}

	return nil
}
