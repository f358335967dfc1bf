// Package msgs defines the protobuf messages exchanged by the bridge.
//
//	message ByteReceived {
//	  uint32 value = 1;
//	  uint64 seq = 2;
//	  int64 timestamp_us = 3;
//	}
//
//	message SendByte {
//	  uint32 value = 1;
//	}
package msgs
